package chat

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	applog "github.com/vitalwave/mediguide/internal/logger"
	"github.com/vitalwave/mediguide/pkg/pagination"
	"github.com/vitalwave/mediguide/pkg/repository"
)

const turnColumns = `id, owner_id, message, response, is_medical, context_id, created_at`

// Store defines the persistence operations for chat turns. All reads and
// deletes are scoped to the owning user.
type Store interface {
	Record(ctx context.Context, turn *Turn) (*Turn, error)
	List(ctx context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Turn], error)
	Recent(ctx context.Context, owner uuid.UUID, limit int) ([]Turn, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
	Clear(ctx context.Context, owner uuid.UUID) error
}

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// NewStore creates a PostgreSQL-backed turn store.
func NewStore(db *sql.DB, logger *slog.Logger, pagination pagination.Config) Store {
	return &repo{
		db:         db,
		logger:     applog.ForSystem(logger, "chat"),
		pagination: pagination,
	}
}

func (r *repo) Record(ctx context.Context, turn *Turn) (*Turn, error) {
	q := `INSERT INTO chat_turns(id, owner_id, message, response, is_medical, context_id)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING ` + turnColumns

	recorded, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Turn, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			turn.ID, turn.OwnerID, turn.Message, turn.Response, turn.IsMedical, turn.ContextID,
		}, scanTurn)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	return &recorded, nil
}

// List returns one page of the owner's history. Pages are taken newest
// first, but turns within the returned page are ordered oldest to newest.
func (r *repo) List(ctx context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Turn], error) {
	page.Normalize(r.pagination)

	var total int
	countQ := `SELECT COUNT(*) FROM chat_turns WHERE owner_id = $1`
	if err := r.db.QueryRowContext(ctx, countQ, owner).Scan(&total); err != nil {
		return nil, fmt.Errorf("count chat turns: %w", err)
	}

	q := `SELECT ` + turnColumns + ` FROM (
			SELECT ` + turnColumns + `
			FROM chat_turns
			WHERE owner_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		) recent
		ORDER BY created_at ASC`

	turns, err := repository.QueryMany(ctx, r.db, q, []any{owner, page.PageSize, page.Offset()}, scanTurn)
	if err != nil {
		return nil, fmt.Errorf("query chat turns: %w", err)
	}

	result := pagination.NewPageResult(turns, total, page.Page, page.PageSize)
	return &result, nil
}

// Recent returns the owner's latest turns in chronological order.
func (r *repo) Recent(ctx context.Context, owner uuid.UUID, limit int) ([]Turn, error) {
	q := `SELECT ` + turnColumns + ` FROM (
			SELECT ` + turnColumns + `
			FROM chat_turns
			WHERE owner_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC`

	turns, err := repository.QueryMany(ctx, r.db, q, []any{owner, limit}, scanTurn)
	if err != nil {
		return nil, fmt.Errorf("query recent turns: %w", err)
	}
	return turns, nil
}

func (r *repo) Delete(ctx context.Context, owner, id uuid.UUID) error {
	q := `DELETE FROM chat_turns WHERE id = $1 AND owner_id = $2`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id, owner)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	r.logger.Info("chat turn deleted", "id", id, "owner", owner)
	return nil
}

func (r *repo) Clear(ctx context.Context, owner uuid.UUID) error {
	q := `DELETE FROM chat_turns WHERE owner_id = $1`
	if _, err := r.db.ExecContext(ctx, q, owner); err != nil {
		return fmt.Errorf("clear chat turns: %w", err)
	}

	r.logger.Info("chat history cleared", "owner", owner)
	return nil
}

func scanTurn(s repository.Scanner) (Turn, error) {
	var t Turn
	err := s.Scan(
		&t.ID,
		&t.OwnerID,
		&t.Message,
		&t.Response,
		&t.IsMedical,
		&t.ContextID,
		&t.CreatedAt,
	)
	return t, err
}
