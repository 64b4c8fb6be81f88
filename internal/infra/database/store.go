package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Store é o acesso genérico às tabelas do dashboard. Ele não conhece o
// schema de nenhuma tabela em tempo de compilação: o caller informa a tabela
// e o shape esperado (T), e as linhas trafegam como JSON montado pelo
// próprio Postgres (row_to_json).
//
// Nenhuma operação guarda estado local. Toda operação é uma ida ao banco, e
// quem chamou precisa refazer o fetch para enxergar o efeito de uma mutação.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// StoreError é qualquer falha vinda do Store: conectividade, violação de
// constraint, linha inexistente em update. Code carrega o código opaco do
// banco (classe SQLSTATE do Postgres) quando existe um.
type StoreError struct {
	Code    string
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

// CodeNotFound é o código de StoreError para update/delete sem linha
// correspondente.
const CodeNotFound = "NOT_FOUND"

const (
	codeDecode   = "DECODE_ERROR"
	codeInternal = "INTERNAL"
)

func wrapStoreErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &StoreError{
			Code:    string(pqErr.Code),
			Message: fmt.Sprintf("%s: %s", op, pqErr.Message),
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Code: CodeNotFound, Message: op + ": no matching row"}
	}
	return &StoreError{Code: codeInternal, Message: fmt.Sprintf("%s: %v", op, err)}
}

// Fetch busca as linhas de q.Table e devolve na ordem pedida. Se houver
// filtro, é um único predicado de igualdade (coluna = valor); o Store não
// suporta filtros compostos nem de faixa.
func Fetch[T any](ctx context.Context, s *Store, q Query) ([]T, error) {
	query, args, err := BuildFetchQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr("fetch "+q.Table, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, wrapStoreErr("fetch "+q.Table, err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, &StoreError{
				Code:    codeDecode,
				Message: fmt.Sprintf("fetch %s: %v", q.Table, err),
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("fetch "+q.Table, err)
	}

	return items, nil
}

// Add insere o item e devolve a linha criada, já com id e defaults
// preenchidos pelo banco. Campos omitidos no JSON do item ficam de fora do
// INSERT para deixar os defaults agirem.
func Add[T any](ctx context.Context, s *Store, table string, item T) (*T, error) {
	query, args, err := BuildInsertQuery(table, item)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return nil, wrapStoreErr("add "+table, err)
	}

	var created T
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, &StoreError{
			Code:    codeDecode,
			Message: fmt.Sprintf("add %s: %v", table, err),
		}
	}
	return &created, nil
}

// Update aplica um update parcial: só as colunas presentes em fields mudam,
// o resto da linha fica intacto. Se nenhuma linha tiver o id, devolve
// StoreError NOT_FOUND.
func Update[T any](ctx context.Context, s *Store, table, id string, fields map[string]any) (*T, error) {
	query, args, err := BuildUpdateQuery(table, id, fields)
	if err != nil {
		return nil, err
	}

	var raw []byte
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		return nil, wrapStoreErr("update "+table, err)
	}

	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return nil, &StoreError{
			Code:    codeDecode,
			Message: fmt.Sprintf("update %s: %v", table, err),
		}
	}
	return &updated, nil
}

// Remove apaga a linha pelo id. Atenção: apagar um id inexistente aqui é um
// no-op silencioso, mas isso é comportamento do backend, não um contrato —
// outro banco pode devolver erro, e o caller não deve assumir idempotência.
func Remove(ctx context.Context, s *Store, table, id string) error {
	query, err := BuildDeleteQuery(table)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, query, id); err != nil {
		return wrapStoreErr("remove "+table, err)
	}
	return nil
}
