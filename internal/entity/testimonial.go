package entity

// Testimonial é um depoimento exibido no site público. Rating é esperado em
// [1,5] mas não é validado aqui: valores fora da faixa são aceitos e
// renderizados como vieram.
type Testimonial struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Role      string `json:"role,omitempty"`
	Content   string `json:"content"`
	ImageURL  string `json:"image_url,omitempty"`
	Rating    int    `json:"rating"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}
