package entity

// GalleryImage é uma foto da galeria do site. OrderIndex define a ordem
// manual de exibição; os valores não são únicos nem contíguos.
type GalleryImage struct {
	ID         string `json:"id,omitempty"`
	URL        string `json:"url"`
	Caption    string `json:"caption,omitempty"`
	Category   string `json:"category,omitempty"`
	OrderIndex int    `json:"order_index"`
}
