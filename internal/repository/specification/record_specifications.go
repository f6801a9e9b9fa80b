package specification

import (
	"strings"

	"nursing-assistant-be/internal/constant"

	"gorm.io/gorm"
)

// VisibleTo restricts rows to what the caller's role may see. Guests only
// get public rows; staff see everything, so no predicate is added. This
// specification is applied on the specific-match query AND the
// fallback-to-latest query, which is what keeps the visibility invariant
// intact on both paths.
type VisibleTo struct {
	Role string
}

func (s VisibleTo) Apply(db *gorm.DB) *gorm.DB {
	if s.Role == constant.RoleStaff {
		return db
	}
	return db.Where("visibility = ?", constant.VisibilityPublic)
}

// ContainsText matches rows where ANY of the given columns contains the
// query as a substring, case-insensitive and unanchored (ILIKE '%q%').
type ContainsText struct {
	Query   string
	Columns []string
}

func (s ContainsText) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Columns) == 0 || s.Query == "" {
		return db
	}
	pattern := "%" + s.Query + "%"
	clauses := make([]string, len(s.Columns))
	args := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		clauses[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}
