package postgres

import (
	"context"
	"errors"
	"fmt"

	"storefx/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileStore struct {
	pool *pgxpool.Pool
}

func NewProfileStore(pool *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{pool: pool}
}

func (s *ProfileStore) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	const q = `select role from profiles where id = $1;`

	var role string
	if err := s.pool.QueryRow(ctx, q, userID).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrProfileNotFound
		}
		return "", fmt.Errorf("failed to select profile %s: %w", userID, err)
	}
	return role, nil
}
