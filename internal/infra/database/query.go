package database

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Eq é o único predicado de filtro suportado: coluna = valor.
type Eq struct {
	Column string
	Value  any
}

// Query descreve um fetch: tabela, coluna de ordenação, direção e filtro
// opcional.
type Query struct {
	Table     string
	OrderBy   string
	Ascending bool
	Filter    *Eq
}

// orderIndexColumn é um caso especial nomeado: ordenar por order_index é
// SEMPRE ascendente, mesmo que o caller peça descendente. A ordenação manual
// (arrastar e soltar) do dashboard depende dessa regra.
const orderIndexColumn = "order_index"

// Identificadores não passam por placeholder, então só aceitamos nomes
// simples de tabela/coluna antes de interpolar no SQL.
var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func validIdent(name string) bool {
	return identRe.MatchString(name)
}

func badIdent(kind, name string) error {
	return &StoreError{
		Code:    codeInternal,
		Message: fmt.Sprintf("invalid %s identifier: %q", kind, name),
	}
}

// BuildFetchQuery monta o SELECT de um fetch. As linhas saem serializadas
// pelo row_to_json para que o Store continue agnóstico de schema.
func BuildFetchQuery(q Query) (string, []any, error) {
	if !validIdent(q.Table) {
		return "", nil, badIdent("table", q.Table)
	}
	if !validIdent(q.OrderBy) {
		return "", nil, badIdent("column", q.OrderBy)
	}

	ascending := q.Ascending
	if q.OrderBy == orderIndexColumn {
		ascending = true
	}
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var sb strings.Builder
	var args []any

	fmt.Fprintf(&sb, "SELECT row_to_json(t) FROM %s t", q.Table)
	if q.Filter != nil {
		if !validIdent(q.Filter.Column) {
			return "", nil, badIdent("column", q.Filter.Column)
		}
		fmt.Fprintf(&sb, " WHERE t.%s = $1", q.Filter.Column)
		args = append(args, q.Filter.Value)
	}
	fmt.Fprintf(&sb, " ORDER BY t.%s %s", q.OrderBy, direction)

	return sb.String(), args, nil
}

// BuildInsertQuery monta o INSERT a partir dos campos presentes no JSON do
// item. Campos omitidos (omitempty) nem aparecem no comando, deixando os
// defaults do banco agirem.
func BuildInsertQuery(table string, item any) (string, []any, error) {
	if !validIdent(table) {
		return "", nil, badIdent("table", table)
	}

	fields, err := itemFields(item)
	if err != nil {
		return "", nil, err
	}
	if len(fields) == 0 {
		return "", nil, &StoreError{
			Code:    codeInternal,
			Message: "insert " + table + ": no fields to insert",
		}
	}

	columns := sortedColumns(fields)
	placeholders := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for i, col := range columns {
		if !validIdent(col) {
			return "", nil, badIdent("column", col)
		}
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, fields[col])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING row_to_json(%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		table,
	)
	return query, args, nil
}

// BuildUpdateQuery monta o UPDATE parcial: só as colunas de fields entram no
// SET.
func BuildUpdateQuery(table, id string, fields map[string]any) (string, []any, error) {
	if !validIdent(table) {
		return "", nil, badIdent("table", table)
	}
	if len(fields) == 0 {
		return "", nil, &StoreError{
			Code:    codeInternal,
			Message: "update " + table + ": no fields to update",
		}
	}

	columns := sortedColumns(fields)
	sets := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, col := range columns {
		if !validIdent(col) {
			return "", nil, badIdent("column", col)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING row_to_json(%s)",
		table,
		strings.Join(sets, ", "),
		len(columns)+1,
		table,
	)
	return query, args, nil
}

func BuildDeleteQuery(table string) (string, error) {
	if !validIdent(table) {
		return "", badIdent("table", table)
	}
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), nil
}

// itemFields serializa o item e devolve as colunas efetivamente presentes.
// Valores nil (json null explícito) são descartados junto com os omitempty.
func itemFields(item any) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, &StoreError{Code: codeInternal, Message: fmt.Sprintf("encode item: %v", err)}
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &StoreError{Code: codeInternal, Message: fmt.Sprintf("decode item: %v", err)}
	}

	for key, value := range fields {
		if value == nil {
			delete(fields, key)
		}
	}
	return fields, nil
}

// sortedColumns deixa a ordem das colunas determinística (mapas em Go não
// têm ordem estável).
func sortedColumns(fields map[string]any) []string {
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
