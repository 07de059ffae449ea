package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumeforge/resumeforge/pkg/resume"
)

// ProfileRepository stores one resume profile per owner as JSONB.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	owner_id UUID PRIMARY KEY,
	data JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ProfileRepository) GetProfile(ctx context.Context, ownerID uuid.UUID) (resume.ResumeData, error) {
	row := r.pool.QueryRow(ctx, `
SELECT data FROM profiles WHERE owner_id = $1
`, ownerID)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.ResumeData{}, resume.ErrProfileNotFound
		}
		return resume.ResumeData{}, err
	}
	var data resume.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return resume.ResumeData{}, err
	}
	return data, nil
}

func (r *ProfileRepository) SaveProfile(ctx context.Context, ownerID uuid.UUID, data resume.ResumeData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO profiles (owner_id, data, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (owner_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
`, ownerID, raw, time.Now().UTC())
	return err
}
