package database

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL,
		department TEXT,
		position TEXT,
		join_date DATE,
		salary NUMERIC(12,2),
		phone TEXT,
		avatar TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		date DATE NOT NULL,
		clock_in TEXT NOT NULL,
		clock_out TEXT,
		hours_worked DOUBLE PRECISION,
		status TEXT NOT NULL,
		UNIQUE (user_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS leaves (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		type TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL,
		approved_by UUID REFERENCES users(id),
		applied_at DATE NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leaves_user ON leaves (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_leaves_status ON leaves (status)`,
	`CREATE TABLE IF NOT EXISTS payroll (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		month TEXT NOT NULL,
		year INT NOT NULL,
		base_salary NUMERIC(12,2) NOT NULL,
		allowances NUMERIC(12,2) NOT NULL,
		deductions NUMERIC(12,2) NOT NULL,
		net_salary NUMERIC(12,2) NOT NULL,
		status TEXT NOT NULL,
		UNIQUE (user_id, year, month)
	)`,
	`CREATE TABLE IF NOT EXISTS performance (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		reviewer_id UUID NOT NULL REFERENCES users(id),
		period TEXT NOT NULL,
		score INT NOT NULL,
		feedback TEXT NOT NULL,
		goals TEXT[] NOT NULL DEFAULT '{}',
		achievements TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_performance_user ON performance (user_id)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		position TEXT NOT NULL,
		resume_url TEXT,
		status TEXT NOT NULL,
		applied_at DATE NOT NULL,
		ai_score INT,
		skills TEXT[],
		experience TEXT,
		education TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_status ON candidates (status)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates (email)`,
	`CREATE TABLE IF NOT EXISTS interviews (
		id UUID PRIMARY KEY,
		candidate_id UUID NOT NULL REFERENCES candidates(id),
		interviewer_id UUID NOT NULL REFERENCES users(id),
		position TEXT NOT NULL,
		scheduled_at TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL,
		feedback TEXT,
		rating INT,
		meeting_link TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_candidate ON interviews (candidate_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_interviewer ON interviews (interviewer_id)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages (user_id)`,
}

// EnsureSchema creates any missing tables. Statements are idempotent, so
// running it on every boot is safe.
func EnsureSchema(ctx context.Context, db DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
