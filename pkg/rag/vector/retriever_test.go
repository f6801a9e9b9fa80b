package vector

import (
	"context"
	"errors"
	"testing"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/contract"
	"nursing-assistant-be/internal/repository/specification"
	"nursing-assistant-be/pkg/embedding"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type fakeEmbedder struct {
	err      error
	taskType string
}

func (f *fakeEmbedder) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	f.taskType = taskType
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2}},
	}, nil
}

type fakeDocumentRepository struct {
	passages []*contract.ScoredPassage
	err      error

	seenTopK       int
	seenNamespace  string
	seenPublicOnly bool
	seenThreshold  float64
}

func (f *fakeDocumentRepository) Create(ctx context.Context, e *entity.DocumentEmbedding) error {
	return nil
}
func (f *fakeDocumentRepository) CreateBulk(ctx context.Context, e []*entity.DocumentEmbedding) error {
	return nil
}
func (f *fakeDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeDocumentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentEmbedding, error) {
	return nil, nil
}
func (f *fakeDocumentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func (f *fakeDocumentRepository) SearchSimilarWithScore(ctx context.Context, emb []float32, topK int, namespace string, publicOnly bool, threshold float64) ([]*contract.ScoredPassage, error) {
	f.seenTopK = topK
	f.seenNamespace = namespace
	f.seenPublicOnly = publicOnly
	f.seenThreshold = threshold
	return f.passages, f.err
}

type fakeUnitOfWork struct {
	docs contract.DocumentEmbeddingRepository
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }
func (f *fakeUnitOfWork) RecordRepository(constant.Category) contract.RecordRepository {
	return nil
}
func (f *fakeUnitOfWork) CallerRepository() contract.CallerRepository { return nil }
func (f *fakeUnitOfWork) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return f.docs
}
func (f *fakeUnitOfWork) AuditLogRepository() contract.AuditLogRepository { return nil }

func TestFetchJoinsPassages(t *testing.T) {
	repo := &fakeDocumentRepository{passages: []*contract.ScoredPassage{
		{Content: "ระเบียบการลา", Similarity: 0.91},
		{Content: "ประกาศวันหยุด", Similarity: 0.75},
	}}
	embedder := &fakeEmbedder{}
	r := NewRetriever(embedder, DefaultConfig(), noopLogger{}, time.Second)

	got := r.Fetch(context.Background(), &fakeUnitOfWork{docs: repo}, "วันหยุด", constant.RoleGuest)

	want := "ระเบียบการลา\nประกาศวันหยุด"
	if got != want {
		t.Errorf("Fetch = %q, want %q", got, want)
	}
	if embedder.taskType != "retrieval_query" {
		t.Errorf("taskType = %q, want retrieval_query", embedder.taskType)
	}
	if repo.seenTopK != 3 || repo.seenNamespace != "documents" || repo.seenThreshold != 0.60 {
		t.Errorf("search params = (%d, %q, %v), want defaults", repo.seenTopK, repo.seenNamespace, repo.seenThreshold)
	}
}

func TestFetchAccessFilterByRole(t *testing.T) {
	tests := []struct {
		role           string
		wantPublicOnly bool
	}{
		{constant.RoleGuest, true},
		{constant.RoleStaff, false},
		{"", true},
	}

	for _, tt := range tests {
		repo := &fakeDocumentRepository{}
		r := NewRetriever(&fakeEmbedder{}, DefaultConfig(), noopLogger{}, time.Second)

		r.Fetch(context.Background(), &fakeUnitOfWork{docs: repo}, "q", tt.role)

		if repo.seenPublicOnly != tt.wantPublicOnly {
			t.Errorf("role %q: publicOnly = %v, want %v", tt.role, repo.seenPublicOnly, tt.wantPublicOnly)
		}
	}
}

func TestFetchDegradesToEmpty(t *testing.T) {
	t.Run("embedding failure", func(t *testing.T) {
		r := NewRetriever(&fakeEmbedder{err: errors.New("quota exceeded")}, DefaultConfig(), noopLogger{}, time.Second)
		if got := r.Fetch(context.Background(), &fakeUnitOfWork{docs: &fakeDocumentRepository{}}, "q", constant.RoleGuest); got != "" {
			t.Errorf("expected empty string on embedding failure, got %q", got)
		}
	})

	t.Run("search failure", func(t *testing.T) {
		repo := &fakeDocumentRepository{err: errors.New("connection refused")}
		r := NewRetriever(&fakeEmbedder{}, DefaultConfig(), noopLogger{}, time.Second)
		if got := r.Fetch(context.Background(), &fakeUnitOfWork{docs: repo}, "q", constant.RoleGuest); got != "" {
			t.Errorf("expected empty string on search failure, got %q", got)
		}
	})

	t.Run("no passages", func(t *testing.T) {
		r := NewRetriever(&fakeEmbedder{}, DefaultConfig(), noopLogger{}, time.Second)
		if got := r.Fetch(context.Background(), &fakeUnitOfWork{docs: &fakeDocumentRepository{}}, "q", constant.RoleGuest); got != "" {
			t.Errorf("expected empty string when nothing qualifies, got %q", got)
		}
	})
}
