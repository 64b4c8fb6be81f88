package database

import (
	"context"
	"fmt"
)

// Em produção o schema mora no banco hospedado; este Migrate existe para
// subir um ambiente local/de teste do zero. Todos os comandos são
// idempotentes.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		contact TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		source TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		type TEXT NOT NULL DEFAULT 'other',
		status TEXT NOT NULL DEFAULT 'pending',
		client_id UUID
	)`,
	`CREATE TABLE IF NOT EXISTS financial_records (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		type TEXT NOT NULL,
		amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
		description TEXT NOT NULL DEFAULT '',
		date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		category TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		rating INTEGER NOT NULL DEFAULT 5,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS gallery_images (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		url TEXT NOT NULL,
		caption TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS site_sections (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		section_key TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		subtitle TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
}

// Note que client_id em events NÃO tem foreign key de propósito: apagar um
// Lead deixa a referência pendurada, e o dashboard convive com isso.
func Migrate(ctx context.Context, s *Store) error {
	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
