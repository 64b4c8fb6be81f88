package database

import (
	"context"

	"github.com/matheusvll/casaflor-api/internal/entity"
)

// FetchTestimonials é a fonte "viva" do rotator: depoimentos mais recentes
// primeiro. O rotator injeta esta função e decide sozinho o que fazer com
// erro ou resultado vazio (fica no fallback).
func (s *Store) FetchTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	return Fetch[entity.Testimonial](ctx, s, Query{
		Table:     "testimonials",
		OrderBy:   "created_at",
		Ascending: false,
	})
}
