package entity

// SiteSectionItem é um bloco de conteúdo editável do site institucional,
// agrupado por section_key (hero, sobre, diferenciais, ...).
type SiteSectionItem struct {
	ID         string `json:"id,omitempty"`
	SectionKey string `json:"section_key"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Content    string `json:"content,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	Icon       string `json:"icon,omitempty"`
	OrderIndex int    `json:"order_index"`
}
