package documents

import (
	"encoding/json"
	"fmt"

	"github.com/vitalwave/mediguide/internal/extract"
	"github.com/vitalwave/mediguide/pkg/repository"
)

const documentColumns = `id, owner_id, filename, file_kind, doc_type, storage_key, page_count,
	extracted_text, medicines, lab_values, summary_short, summary_detailed, suggestions, created_at`

// jsonColumn scans a jsonb column into dest. NULL leaves dest untouched.
type jsonColumn[T any] struct {
	dest *T
}

func (c jsonColumn[T]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, c.dest)
	case string:
		return json.Unmarshal([]byte(v), c.dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

func jsonValue(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb value: %w", err)
	}
	return data, nil
}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Filename,
		&d.FileKind,
		&d.DocType,
		&d.StorageKey,
		&d.PageCount,
		&d.ExtractedText,
		jsonColumn[[]extract.Medicine]{&d.Medicines},
		jsonColumn[[]extract.LabValue]{&d.LabValues},
		jsonColumn[[]string]{&d.SummaryShort},
		&d.SummaryDetailed,
		jsonColumn[[]string]{&d.Suggestions},
		&d.CreatedAt,
	)
	return d, err
}
