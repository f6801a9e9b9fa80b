package contract

import (
	"context"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// RecordRepository is the per-category relational collection. Every category
// table is accessed through this interface; the implementation knows its own
// searchable columns and default ordering, callers supply access and limit
// specifications.
type RecordRepository interface {
	// FindMatching runs the specific-match query: any searchable column
	// contains the query as a substring, default ordering applied.
	FindMatching(ctx context.Context, query string, specs ...specification.Specification) ([]entity.Record, error)
	// FindLatest is the fallback query: no text filter, default ordering.
	FindLatest(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (entity.Record, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error)
	Create(ctx context.Context, record entity.Record) error
	Update(ctx context.Context, record entity.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
