package specification

import (
	"strings"
	"testing"

	"nursing-assistant-be/internal/constant"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type row struct {
	Id         string
	Visibility string
}

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun: true,
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db
}

func buildSQL(t *testing.T, db *gorm.DB, specs ...Specification) string {
	t.Helper()

	query := db.Model(&row{}).Table("rows")
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	var out []row
	stmt := query.Find(&out).Statement
	return stmt.SQL.String()
}

func TestVisibleToGuestAddsPredicate(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, VisibleTo{Role: constant.RoleGuest})

	if !strings.Contains(sql, "visibility = ") {
		t.Errorf("guest query missing visibility predicate: %s", sql)
	}
}

func TestVisibleToStaffAddsNothing(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, VisibleTo{Role: constant.RoleStaff})

	if strings.Contains(sql, "visibility") {
		t.Errorf("staff query must not filter on visibility: %s", sql)
	}
}

func TestContainsTextBuildsILikeOrChain(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, ContainsText{
		Query:   "อบรม",
		Columns: []string{"course_name", "description"},
	})

	if !strings.Contains(sql, "course_name ILIKE") {
		t.Errorf("first column missing: %s", sql)
	}
	if !strings.Contains(sql, "OR description ILIKE") {
		t.Errorf("columns must be OR-joined: %s", sql)
	}
}

func TestContainsTextEmptyQueryIsNoop(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db, ContainsText{Query: "", Columns: []string{"course_name"}})

	if strings.Contains(sql, "ILIKE") {
		t.Errorf("empty query must not add a text predicate: %s", sql)
	}
}

func TestOrderByAndPagination(t *testing.T) {
	db := newDryRunDB(t)

	sql := buildSQL(t, db,
		OrderBy{Field: "start_date"},
		Pagination{Limit: 5},
	)

	if !strings.Contains(sql, "ORDER BY start_date ASC") {
		t.Errorf("ordering missing: %s", sql)
	}
	if !strings.Contains(sql, "LIMIT") {
		t.Errorf("limit missing: %s", sql)
	}
}

func TestCombinedMatchQueryShape(t *testing.T) {
	db := newDryRunDB(t)

	// The shape the relational retriever produces: text match, visibility,
	// default ordering, row cap.
	sql := buildSQL(t, db,
		ContainsText{Query: "bls", Columns: []string{"course_name", "description", "location"}},
		OrderBy{Field: "start_date"},
		VisibleTo{Role: constant.RoleGuest},
		Pagination{Limit: 5},
	)

	for _, fragment := range []string{"course_name ILIKE", "visibility = ", "ORDER BY start_date ASC", "LIMIT"} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("combined query missing %q: %s", fragment, sql)
		}
	}
}
