package entity

import "context"

// Status do funil de vendas. O banco não valida esses valores: um status
// desconhecido é aceito e simplesmente não entra em nenhum bucket do funil.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusProposalSent LeadStatus = "proposal_sent"
	LeadStatusNegotiating  LeadStatus = "negotiating"
	LeadStatusClosed       LeadStatus = "closed"

	// LeadStatusAll é o curinga usado pelos filtros de listagem.
	LeadStatusAll = "all"
)

// PipelineStatuses lista os estágios na ordem em que o dashboard exibe.
var PipelineStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusProposalSent,
	LeadStatusNegotiating,
	LeadStatusClosed,
}

type Lead struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Contact   string `json:"contact"` // email ou telefone, texto livre
	Status    string `json:"status"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type LeadRepositoryInterface interface {
	List(ctx context.Context, status string) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, lead *Lead) (*Lead, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Lead, error)
	Delete(ctx context.Context, id string) error
}
