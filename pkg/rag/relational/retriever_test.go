package relational

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/contract"
	"nursing-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// fakeRecordRepository serves canned rows and records which query path ran.
type fakeRecordRepository struct {
	matching    []entity.Record
	latest      []entity.Record
	matchingErr error
	latestErr   error

	matchingCalls int
	latestCalls   int
	seenSpecs     []specification.Specification
}

func (f *fakeRecordRepository) FindMatching(ctx context.Context, query string, specs ...specification.Specification) ([]entity.Record, error) {
	f.matchingCalls++
	f.seenSpecs = append(f.seenSpecs, specs...)
	return f.matching, f.matchingErr
}

func (f *fakeRecordRepository) FindLatest(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	f.latestCalls++
	f.seenSpecs = append(f.seenSpecs, specs...)
	return f.latest, f.latestErr
}

func (f *fakeRecordRepository) FindOne(ctx context.Context, specs ...specification.Specification) (entity.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepository) Create(ctx context.Context, record entity.Record) error { return nil }
func (f *fakeRecordRepository) Update(ctx context.Context, record entity.Record) error { return nil }
func (f *fakeRecordRepository) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (f *fakeRecordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeUnitOfWork struct {
	repos map[constant.Category]contract.RecordRepository
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) RecordRepository(category constant.Category) contract.RecordRepository {
	return f.repos[category]
}

func (f *fakeUnitOfWork) CallerRepository() contract.CallerRepository { return nil }
func (f *fakeUnitOfWork) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return nil
}
func (f *fakeUnitOfWork) AuditLogRepository() contract.AuditLogRepository { return nil }

func trainingRecord(name string) entity.Record {
	return &entity.TrainingCourse{Id: uuid.New(), CourseName: name, Location: "ห้องประชุมใหญ่"}
}

func TestFetchSpecificMatch(t *testing.T) {
	repo := &fakeRecordRepository{matching: []entity.Record{trainingRecord("BLS ขั้นพื้นฐาน")}}
	uow := &fakeUnitOfWork{repos: map[constant.Category]contract.RecordRepository{
		constant.CategoryTraining: repo,
	}}
	r := NewRetriever(noopLogger{}, time.Second)

	text, results := r.Fetch(context.Background(), uow, "bls", constant.RoleGuest, []constant.Category{constant.CategoryTraining})

	if !strings.Contains(text, "📌 BLS ขั้นพื้นฐาน") {
		t.Errorf("block missing record title: %q", text)
	}
	if strings.Contains(text, constant.RelationalFallbackMarker) {
		t.Errorf("specific match must not carry the fallback marker")
	}
	if repo.latestCalls != 0 {
		t.Errorf("fallback ran despite a specific match")
	}
	if len(results) != 1 || results[0].Fallback || results[0].Unavailable {
		t.Errorf("unexpected result state: %+v", results)
	}
}

func TestFetchFallsBackToLatest(t *testing.T) {
	repo := &fakeRecordRepository{latest: []entity.Record{trainingRecord("ACLS ประจำปี")}}
	uow := &fakeUnitOfWork{repos: map[constant.Category]contract.RecordRepository{
		constant.CategoryTraining: repo,
	}}
	r := NewRetriever(noopLogger{}, time.Second)

	text, results := r.Fetch(context.Background(), uow, "ไม่มีคำนี้", constant.RoleGuest, []constant.Category{constant.CategoryTraining})

	if !strings.HasPrefix(text, constant.RelationalFallbackMarker) {
		t.Errorf("fallback block must start with the marker: %q", text)
	}
	if !strings.Contains(text, "ACLS ประจำปี") {
		t.Errorf("fallback rows missing: %q", text)
	}
	if !results[0].Fallback {
		t.Errorf("fallback flag not set")
	}
}

// The visibility predicate must reach BOTH query paths; otherwise staff-only
// rows would leak to guests through the fallback.
func TestFetchAppliesVisibilityOnBothPaths(t *testing.T) {
	repo := &fakeRecordRepository{}
	uow := &fakeUnitOfWork{repos: map[constant.Category]contract.RecordRepository{
		constant.CategoryTraining: repo,
	}}
	r := NewRetriever(noopLogger{}, time.Second)

	r.Fetch(context.Background(), uow, "q", constant.RoleGuest, []constant.Category{constant.CategoryTraining})

	if repo.matchingCalls != 1 || repo.latestCalls != 1 {
		t.Fatalf("expected both paths to run, got matching=%d latest=%d", repo.matchingCalls, repo.latestCalls)
	}
	visibleCount := 0
	for _, spec := range repo.seenSpecs {
		if v, ok := spec.(specification.VisibleTo); ok && v.Role == constant.RoleGuest {
			visibleCount++
		}
	}
	if visibleCount != 2 {
		t.Errorf("VisibleTo applied %d times, want once per path", visibleCount)
	}
}

func TestFetchQueryFailureIsIsolated(t *testing.T) {
	broken := &fakeRecordRepository{matchingErr: errors.New("relation does not exist")}
	healthy := &fakeRecordRepository{matching: []entity.Record{trainingRecord("คอร์สที่รอด")}}
	uow := &fakeUnitOfWork{repos: map[constant.Category]contract.RecordRepository{
		constant.CategoryTraining: broken,
		constant.CategoryNews:     healthy,
	}}
	r := NewRetriever(noopLogger{}, time.Second)

	text, results := r.Fetch(context.Background(), uow, "q", constant.RoleStaff,
		[]constant.Category{constant.CategoryTraining, constant.CategoryNews})

	if !results[0].Unavailable {
		t.Errorf("failed category not marked unavailable")
	}
	if !strings.Contains(text, "คอร์สที่รอด") {
		t.Errorf("healthy category lost because another failed: %q", text)
	}
}

func TestFetchEmptyEverywhere(t *testing.T) {
	repo := &fakeRecordRepository{}
	uow := &fakeUnitOfWork{repos: map[constant.Category]contract.RecordRepository{
		constant.CategoryTraining: repo,
	}}
	r := NewRetriever(noopLogger{}, time.Second)

	text, results := r.Fetch(context.Background(), uow, "q", constant.RoleGuest, []constant.Category{constant.CategoryTraining})

	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
	if results[0].Fallback || results[0].Unavailable || results[0].Block != "" {
		t.Errorf("empty category should yield a zero result: %+v", results[0])
	}
}
