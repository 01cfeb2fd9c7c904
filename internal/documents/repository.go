package documents

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

// Store defines the persistence operations for document records. All
// reads and deletes are scoped to the owning user.
type Store interface {
	Insert(ctx context.Context, doc *Document) (*Document, error)
	List(ctx context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Document], error)
	Find(ctx context.Context, owner, id uuid.UUID) (*Document, error)
	Latest(ctx context.Context, owner uuid.UUID) (*Document, error)
	HasContent(ctx context.Context, owner uuid.UUID) (bool, error)
	Delete(ctx context.Context, owner, id uuid.UUID) error
}

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// NewStore creates a PostgreSQL-backed document store.
func NewStore(db *sql.DB, logger *slog.Logger, pagination pagination.Config) Store {
	return &repo{
		db:         db,
		logger:     applog.ForSystem(logger, "documents"),
		pagination: pagination,
	}
}

func (r *repo) Insert(ctx context.Context, doc *Document) (*Document, error) {
	medicines, err := jsonValue(doc.Medicines)
	if err != nil {
		return nil, err
	}
	labValues, err := jsonValue(doc.LabValues)
	if err != nil {
		return nil, err
	}
	summaryShort, err := jsonValue(doc.SummaryShort)
	if err != nil {
		return nil, err
	}
	suggestions, err := jsonValue(doc.Suggestions)
	if err != nil {
		return nil, err
	}

	q := `INSERT INTO documents(id, owner_id, filename, file_kind, doc_type, storage_key, page_count,
			extracted_text, medicines, lab_values, summary_short, summary_detailed, suggestions)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + documentColumns

	created, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			doc.ID, doc.OwnerID, doc.Filename, doc.FileKind, doc.DocType, doc.StorageKey, doc.PageCount,
			doc.ExtractedText, medicines, labValues, summaryShort, doc.SummaryDetailed, suggestions,
		}, scanDocument)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document created", "id", created.ID, "owner", created.OwnerID, "doc_type", created.DocType)
	return &created, nil
}

func (r *repo) List(ctx context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	var total int
	countQ := `SELECT COUNT(*) FROM documents WHERE owner_id = $1`
	if err := r.db.QueryRowContext(ctx, countQ, owner).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	q := `SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	docs, err := repository.QueryMany(ctx, r.db, q, []any{owner, page.PageSize, page.Offset()}, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, owner, id uuid.UUID) (*Document, error) {
	q := `SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1 AND owner_id = $2`

	doc, err := repository.QueryOne(ctx, r.db, q, []any{id, owner}, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) Latest(ctx context.Context, owner uuid.UUID) (*Document, error) {
	q := `SELECT ` + documentColumns + `
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	doc, err := repository.QueryOne(ctx, r.db, q, []any{owner}, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) HasContent(ctx context.Context, owner uuid.UUID) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM documents WHERE owner_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, owner).Scan(&exists); err != nil {
		return false, fmt.Errorf("check documents: %w", err)
	}
	return exists, nil
}

func (r *repo) Delete(ctx context.Context, owner, id uuid.UUID) error {
	q := `DELETE FROM documents WHERE id = $1 AND owner_id = $2`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id, owner)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document deleted", "id", id, "owner", owner)
	return nil
}
