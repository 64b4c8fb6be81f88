package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matheusvll/casaflor-api/internal/entity"
)

// ============ TESTES DO FETCH ============

func TestBuildFetchQueryHonorsDirection(t *testing.T) {
	query, args, err := BuildFetchQuery(Query{
		Table:     "leads",
		OrderBy:   "created_at",
		Ascending: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT row_to_json(t) FROM leads t ORDER BY t.created_at DESC", query)
	assert.Empty(t, args)

	query, _, err = BuildFetchQuery(Query{
		Table:     "leads",
		OrderBy:   "created_at",
		Ascending: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT row_to_json(t) FROM leads t ORDER BY t.created_at ASC", query)
}

// Ordenar por order_index ignora o pedido de descendente: a ordem manual da
// galeria depende de sempre sair ascendente.
func TestBuildFetchQueryOrderIndexForcesAscending(t *testing.T) {
	query, _, err := BuildFetchQuery(Query{
		Table:     "gallery_images",
		OrderBy:   "order_index",
		Ascending: false, // o caller pediu DESC e não vai ser atendido
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT row_to_json(t) FROM gallery_images t ORDER BY t.order_index ASC", query)
}

func TestBuildFetchQueryWithEqualityFilter(t *testing.T) {
	query, args, err := BuildFetchQuery(Query{
		Table:     "leads",
		OrderBy:   "created_at",
		Ascending: false,
		Filter:    &Eq{Column: "status", Value: "new"},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT row_to_json(t) FROM leads t WHERE t.status = $1 ORDER BY t.created_at DESC", query)
	assert.Equal(t, []any{"new"}, args)
}

func TestBuildFetchQueryRejectsBadIdentifiers(t *testing.T) {
	_, _, err := BuildFetchQuery(Query{Table: "leads; DROP TABLE leads", OrderBy: "created_at"})
	assert.Error(t, err)

	_, _, err = BuildFetchQuery(Query{Table: "leads", OrderBy: "created_at DESC --"})
	assert.Error(t, err)

	_, _, err = BuildFetchQuery(Query{
		Table:   "leads",
		OrderBy: "created_at",
		Filter:  &Eq{Column: "status' OR '1'='1", Value: "x"},
	})
	assert.Error(t, err)
}

// ============ TESTES DO INSERT ============

func TestBuildInsertQueryUsesPresentFieldsOnly(t *testing.T) {
	lead := entity.Lead{
		Name:    "Maria Silva",
		Contact: "maria@email.com",
		Status:  "new",
		Source:  "Instagram",
		// ID e CreatedAt vazios: ficam fora e o banco preenche
	}

	query, args, err := BuildInsertQuery("leads", lead)
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO leads (contact, name, source, status) VALUES ($1, $2, $3, $4) RETURNING row_to_json(leads)",
		query,
	)
	assert.Equal(t, []any{"maria@email.com", "Maria Silva", "Instagram", "new"}, args)
}

func TestBuildInsertQueryEventWithoutClientID(t *testing.T) {
	event := entity.Event{
		Title:     "Aniversário",
		StartDate: "2026-10-10",
		EndDate:   "2026-10-11",
		Type:      "birthday",
		Status:    "pending",
		// ClientID nil: coluna nem aparece no INSERT
	}

	query, args, err := BuildInsertQuery("events", event)
	require.NoError(t, err)
	assert.NotContains(t, query, "client_id")
	assert.Len(t, args, 5)
}

func TestBuildInsertQueryEmptyItem(t *testing.T) {
	_, _, err := BuildInsertQuery("leads", struct{}{})
	assert.Error(t, err)
}

// ============ TESTES DO UPDATE/DELETE ============

func TestBuildUpdateQueryPartialFields(t *testing.T) {
	query, args, err := BuildUpdateQuery("testimonials", "t-1", map[string]any{
		"content": "novo texto",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE testimonials SET content = $1 WHERE id = $2 RETURNING row_to_json(testimonials)",
		query,
	)
	assert.Equal(t, []any{"novo texto", "t-1"}, args)
}

func TestBuildUpdateQueryDeterministicColumnOrder(t *testing.T) {
	query, args, err := BuildUpdateQuery("leads", "L1", map[string]any{
		"status": "contacted",
		"source": "WhatsApp",
		"name":   "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE leads SET name = $1, source = $2, status = $3 WHERE id = $4 RETURNING row_to_json(leads)",
		query,
	)
	assert.Equal(t, []any{"Maria", "WhatsApp", "contacted", "L1"}, args)
}

func TestBuildUpdateQueryRejectsEmptyFields(t *testing.T) {
	_, _, err := BuildUpdateQuery("leads", "L1", map[string]any{})
	assert.Error(t, err)
}

func TestBuildDeleteQuery(t *testing.T) {
	query, err := BuildDeleteQuery("testimonials")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM testimonials WHERE id = $1", query)

	_, err = BuildDeleteQuery("bad table")
	assert.Error(t, err)
}
