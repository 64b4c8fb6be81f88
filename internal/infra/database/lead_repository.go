package database

import (
	"context"

	"github.com/matheusvll/casaflor-api/internal/entity"
)

const leadsTable = "leads"

// LeadRepository amarra o Store genérico à tabela de leads. Toda a mecânica
// de query mora no Store; aqui só fixamos tabela e shape.
type LeadRepository struct {
	Store *Store
}

func NewLeadRepository(store *Store) *LeadRepository {
	return &LeadRepository{Store: store}
}

// List devolve os leads mais novos primeiro. status = "all" traz tudo;
// qualquer outro valor vira o filtro de igualdade do Store.
func (r *LeadRepository) List(ctx context.Context, status string) ([]entity.Lead, error) {
	q := Query{
		Table:     leadsTable,
		OrderBy:   "created_at",
		Ascending: false,
	}
	if status != entity.LeadStatusAll && status != "" {
		q.Filter = &Eq{Column: "status", Value: status}
	}
	return Fetch[entity.Lead](ctx, r.Store, q)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	leads, err := Fetch[entity.Lead](ctx, r.Store, Query{
		Table:     leadsTable,
		OrderBy:   "created_at",
		Ascending: false,
		Filter:    &Eq{Column: "id", Value: id},
	})
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, &StoreError{Code: CodeNotFound, Message: "lead not found: " + id}
	}
	return &leads[0], nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	return Add(ctx, r.Store, leadsTable, *lead)
}

func (r *LeadRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.Lead, error) {
	return Update[entity.Lead](ctx, r.Store, leadsTable, id, fields)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return Remove(ctx, r.Store, leadsTable, id)
}
