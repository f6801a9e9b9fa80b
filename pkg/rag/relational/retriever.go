package relational

import (
	"context"
	"strings"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/repository/specification"
	"nursing-assistant-be/internal/repository/unitofwork"
)

// recordLimit caps rows per category on both the specific-match and the
// fallback query.
const recordLimit = 5

// CategoryResult is the outcome for one category: a formatted block, an
// explicit fallback flag, or unavailable when the backing query failed.
// A failed category contributes nothing; it never aborts the others.
type CategoryResult struct {
	Category    constant.Category
	Block       string
	Fallback    bool
	Unavailable bool
}

// Retriever executes the two-phase relational lookup for each selected
// category: specific match first, latest-records fallback second, with the
// caller's visibility predicate applied on both paths.
type Retriever struct {
	logger       logger.ILogger
	queryTimeout time.Duration
}

func NewRetriever(log logger.ILogger, queryTimeout time.Duration) *Retriever {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &Retriever{
		logger:       log,
		queryTimeout: queryTimeout,
	}
}

// Fetch returns the concatenated category blocks (blank-line separated, in
// category-processing order) plus the per-category results for callers that
// need the breakdown. An empty string means no category produced rows.
func (r *Retriever) Fetch(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	query string,
	role string,
	categories []constant.Category,
) (string, []CategoryResult) {

	results := make([]CategoryResult, 0, len(categories))
	var blocks []string

	for _, cat := range categories {
		result := r.fetchCategory(ctx, uow, query, role, cat)
		results = append(results, result)
		if result.Block != "" {
			blocks = append(blocks, result.Block)
		}
	}

	return strings.Join(blocks, "\n\n"), results
}

func (r *Retriever) fetchCategory(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	query string,
	role string,
	cat constant.Category,
) CategoryResult {

	cctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	repo := uow.RecordRepository(cat)
	if repo == nil {
		return CategoryResult{Category: cat, Unavailable: true}
	}

	specs := []specification.Specification{
		specification.VisibleTo{Role: role},
		specification.Pagination{Limit: recordLimit},
	}

	rows, err := repo.FindMatching(cctx, query, specs...)
	if err != nil {
		r.logger.Warn("relational-retriever", "specific-match query failed", map[string]interface{}{
			"category": string(cat),
			"error":    err.Error(),
		})
		return CategoryResult{Category: cat, Unavailable: true}
	}

	fallback := false
	if len(rows) == 0 {
		rows, err = repo.FindLatest(cctx, specs...)
		if err != nil {
			r.logger.Warn("relational-retriever", "fallback query failed", map[string]interface{}{
				"category": string(cat),
				"error":    err.Error(),
			})
			return CategoryResult{Category: cat, Unavailable: true}
		}
		fallback = len(rows) > 0
	}

	if len(rows) == 0 {
		return CategoryResult{Category: cat}
	}

	return CategoryResult{
		Category: cat,
		Block:    formatBlock(rows, fallback),
		Fallback: fallback,
	}
}

// formatBlock renders rows as a highlighted title heading followed by
// indented label/value lines. Internal attributes never reach this point:
// RecordFields only exposes presentable, non-empty values.
func formatBlock(rows []entity.Record, fallback bool) string {
	var b strings.Builder
	if fallback {
		b.WriteString(constant.RelationalFallbackMarker)
		b.WriteString("\n")
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("📌 ")
		b.WriteString(row.RecordTitle())
		b.WriteString("\n")
		for _, field := range row.RecordFields() {
			b.WriteString("   - ")
			b.WriteString(field.Label)
			b.WriteString(": ")
			b.WriteString(field.Value)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
