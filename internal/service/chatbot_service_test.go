package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/contract"
	"nursing-assistant-be/internal/repository/specification"
	"nursing-assistant-be/internal/repository/unitofwork"
	"nursing-assistant-be/pkg/embedding"
	"nursing-assistant-be/pkg/llm"
	"nursing-assistant-be/pkg/rag/classify"
	"nursing-assistant-be/pkg/rag/generate"
	"nursing-assistant-be/pkg/rag/relational"
	"nursing-assistant-be/pkg/rag/safety"
	"nursing-assistant-be/pkg/rag/vector"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// --- pipeline fakes ---

type stubRecordRepository struct {
	matching []entity.Record
	calls    int
}

func (s *stubRecordRepository) FindMatching(ctx context.Context, query string, specs ...specification.Specification) ([]entity.Record, error) {
	s.calls++
	return s.matching, nil
}

func (s *stubRecordRepository) FindLatest(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	s.calls++
	return nil, nil
}

func (s *stubRecordRepository) FindOne(ctx context.Context, specs ...specification.Specification) (entity.Record, error) {
	return nil, nil
}

func (s *stubRecordRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	return nil, nil
}

func (s *stubRecordRepository) Create(ctx context.Context, record entity.Record) error { return nil }
func (s *stubRecordRepository) Update(ctx context.Context, record entity.Record) error { return nil }
func (s *stubRecordRepository) Delete(ctx context.Context, id uuid.UUID) error         { return nil }
func (s *stubRecordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type stubDocumentRepository struct {
	passages []*contract.ScoredPassage
}

func (s *stubDocumentRepository) Create(ctx context.Context, e *entity.DocumentEmbedding) error {
	return nil
}
func (s *stubDocumentRepository) CreateBulk(ctx context.Context, e []*entity.DocumentEmbedding) error {
	return nil
}
func (s *stubDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubDocumentRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentEmbedding, error) {
	return nil, nil
}
func (s *stubDocumentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (s *stubDocumentRepository) SearchSimilarWithScore(ctx context.Context, emb []float32, topK int, namespace string, publicOnly bool, threshold float64) ([]*contract.ScoredPassage, error) {
	return s.passages, nil
}

type stubUnitOfWork struct {
	records map[constant.Category]contract.RecordRepository
	docs    contract.DocumentEmbeddingRepository
	callers contract.CallerRepository
}

func (s *stubUnitOfWork) Begin(ctx context.Context) error { return nil }
func (s *stubUnitOfWork) Commit() error                   { return nil }
func (s *stubUnitOfWork) Rollback() error                 { return nil }
func (s *stubUnitOfWork) RecordRepository(category constant.Category) contract.RecordRepository {
	return s.records[category]
}
func (s *stubUnitOfWork) CallerRepository() contract.CallerRepository { return s.callers }
func (s *stubUnitOfWork) DocumentEmbeddingRepository() contract.DocumentEmbeddingRepository {
	return s.docs
}
func (s *stubUnitOfWork) AuditLogRepository() contract.AuditLogRepository { return nil }

type stubUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (s *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return s.uow }

type stubIdentity struct {
	caller *entity.Caller
}

func (s *stubIdentity) Resolve(ctx context.Context, externalId string) (*entity.Caller, error) {
	if s.caller != nil {
		return s.caller, nil
	}
	return &entity.Caller{ExternalId: externalId, Role: constant.RoleGuest}, nil
}

func (s *stubIdentity) Register(ctx context.Context, externalId, displayName, department string) (*entity.Caller, error) {
	return nil, errors.New("not used")
}

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) Generate(ctx context.Context, text, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.5}},
	}, nil
}

type stubLLM struct {
	reply   string
	failAll bool
	calls   int
	prompts []string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("not used")
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.failAll {
		return "", errors.New("model down")
	}
	return s.reply, nil
}

func newTestChatbot(uow unitofwork.UnitOfWork, identity IIdentityService, embedder embedding.EmbeddingProvider, provider llm.LLMProvider) IChatbotService {
	factory := &stubUowFactory{uow: uow}
	return NewChatbotService(
		factory,
		identity,
		safety.NewFilter(constant.RestrictedTerms),
		classify.NewClassifier(constant.CategoryTriggers),
		relational.NewRetriever(noopLogger{}, time.Second),
		vector.NewRetriever(embedder, vector.DefaultConfig(), noopLogger{}, time.Second),
		generate.NewGenerator(provider, []string{"model-a", "model-b"}, noopLogger{}),
		noopLogger{},
	)
}

func TestAskGuestTrainingQuery(t *testing.T) {
	trainingRepo := &stubRecordRepository{matching: []entity.Record{
		&entity.TrainingCourse{Id: uuid.New(), CourseName: "อบรม BLS"},
	}}
	uow := &stubUnitOfWork{
		records: map[constant.Category]contract.RecordRepository{
			constant.CategoryTraining: trainingRepo,
			constant.CategoryMeeting:  &stubRecordRepository{},
			constant.CategoryProject:  &stubRecordRepository{},
			constant.CategoryUnit:     &stubRecordRepository{},
			constant.CategoryJob:      &stubRecordRepository{},
			constant.CategoryNews:     &stubRecordRepository{},
		},
		docs: &stubDocumentRepository{},
	}
	provider := &stubLLM{reply: "มีอบรม BLS ครับ"}
	svc := newTestChatbot(uow, &stubIdentity{}, &stubEmbedder{}, provider)

	res, err := svc.Ask(context.Background(), "เดือนนี้มีอบรมอะไรบ้าง", "U123")

	require.NoError(t, err)
	assert.Equal(t, "มีอบรม BLS ครับ", res.Reply)
	assert.Equal(t, constant.RoleGuest, res.Role)
	assert.Equal(t, []string{"training"}, res.Categories)
	assert.False(t, res.Blocked)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "อบรม BLS")
	assert.Contains(t, provider.prompts[0], constant.ContextRoleGuestLabel)
}

func TestAskRestrictedQueryShortCircuits(t *testing.T) {
	trainingRepo := &stubRecordRepository{}
	uow := &stubUnitOfWork{
		records: map[constant.Category]contract.RecordRepository{
			constant.CategoryTraining: trainingRepo,
		},
		docs: &stubDocumentRepository{},
	}
	provider := &stubLLM{reply: "should not be called"}
	svc := newTestChatbot(uow, &stubIdentity{}, &stubEmbedder{}, provider)

	res, err := svc.Ask(context.Background(), "ขอดูสลิปเงินเดือนหน่อย", "U123")

	require.NoError(t, err)
	assert.Equal(t, constant.ChatRefusalMessage, res.Reply)
	assert.True(t, res.Blocked)
	assert.Zero(t, trainingRepo.calls, "blocked query must not touch the database")
	assert.Zero(t, provider.calls, "blocked query must not reach the model")
}

func TestAskNothingRetrievedYieldsNoDataMessage(t *testing.T) {
	uow := &stubUnitOfWork{
		records: map[constant.Category]contract.RecordRepository{
			constant.CategoryTraining: &stubRecordRepository{},
			constant.CategoryMeeting:  &stubRecordRepository{},
			constant.CategoryProject:  &stubRecordRepository{},
			constant.CategoryUnit:     &stubRecordRepository{},
			constant.CategoryJob:      &stubRecordRepository{},
			constant.CategoryNews:     &stubRecordRepository{},
		},
		docs: &stubDocumentRepository{},
	}
	provider := &stubLLM{}
	svc := newTestChatbot(uow, &stubIdentity{}, &stubEmbedder{err: errors.New("quota")}, provider)

	res, err := svc.Ask(context.Background(), "เดือนนี้มีอบรมอะไรบ้าง", "U123")

	require.NoError(t, err)
	assert.Equal(t, constant.ChatNoDataMessage, res.Reply)
	assert.Zero(t, provider.calls, "no-data path must skip generation")
}

func TestAskAllModelsFailYieldsApology(t *testing.T) {
	uow := &stubUnitOfWork{
		records: map[constant.Category]contract.RecordRepository{
			constant.CategoryTraining: &stubRecordRepository{matching: []entity.Record{
				&entity.TrainingCourse{Id: uuid.New(), CourseName: "อบรม X"},
			}},
		},
		docs: &stubDocumentRepository{},
	}
	provider := &stubLLM{failAll: true}
	svc := newTestChatbot(uow, &stubIdentity{}, &stubEmbedder{}, provider)

	res, err := svc.Ask(context.Background(), "มีอบรมไหม", "U123")

	require.NoError(t, err)
	assert.Equal(t, constant.ChatApologyMessage, res.Reply)
	assert.Equal(t, 2, provider.calls, "every model in the chain gets one attempt")
}

func TestAskStaffSeesStaffContext(t *testing.T) {
	uow := &stubUnitOfWork{
		records: map[constant.Category]contract.RecordRepository{
			constant.CategoryMeeting: &stubRecordRepository{matching: []entity.Record{
				&entity.Meeting{Id: uuid.New(), Topic: "ประชุมลับ", MeetingNo: "123", Passcode: "456"},
			}},
		},
		docs: &stubDocumentRepository{},
	}
	provider := &stubLLM{reply: "รายละเอียดประชุมครับ"}
	staff := &entity.Caller{ExternalId: "U9", DisplayName: "สมหญิง", Role: constant.RoleStaff}
	svc := newTestChatbot(uow, &stubIdentity{caller: staff}, &stubEmbedder{}, provider)

	res, err := svc.Ask(context.Background(), "ประชุมวันนี้", "U9")

	require.NoError(t, err)
	assert.Equal(t, constant.RoleStaff, res.Role)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], constant.ContextRoleStaffLabel)
	assert.Contains(t, provider.prompts[0], "สมหญิง")
}
