package usecase

import "github.com/matheusvll/casaflor-api/internal/entity"

// FilterLeads devolve o subconjunto de leads do estágio pedido. "all" (ou
// vazio) devolve tudo. A comparação é literal: um status fora do vocabulário
// simplesmente não casa com nada — o banco aceita qualquer valor e o funil
// só enxerga os conhecidos.
func FilterLeads(leads []entity.Lead, status string) []entity.Lead {
	if status == entity.LeadStatusAll || status == "" {
		return leads
	}

	var filtered []entity.Lead
	for _, lead := range leads {
		if lead.Status == status {
			filtered = append(filtered, lead)
		}
	}
	return filtered
}

// StageCounts conta os leads por estágio para os badges do funil. Estágio
// sem lead fica FORA do mapa (badge ausente), que é diferente de um estágio
// com contagem zero explícita. Status fora do vocabulário não vira bucket.
func StageCounts(leads []entity.Lead) map[entity.LeadStatus]int {
	counts := make(map[entity.LeadStatus]int)
	for _, lead := range leads {
		status := entity.LeadStatus(lead.Status)
		if pipelineStage(status) {
			counts[status]++
		}
	}
	return counts
}

func pipelineStage(status entity.LeadStatus) bool {
	for _, known := range entity.PipelineStatuses {
		if status == known {
			return true
		}
	}
	return false
}
