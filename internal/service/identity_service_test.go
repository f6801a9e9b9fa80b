package service

import (
	"context"
	"testing"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCallerRepository struct {
	store     map[string]*entity.Caller
	findCalls int
}

func newStubCallerRepository() *stubCallerRepository {
	return &stubCallerRepository{store: make(map[string]*entity.Caller)}
}

func (s *stubCallerRepository) FindByExternalId(ctx context.Context, externalId string) (*entity.Caller, error) {
	s.findCalls++
	return s.store[externalId], nil
}

func (s *stubCallerRepository) Upsert(ctx context.Context, caller *entity.Caller) error {
	s.store[caller.ExternalId] = caller
	return nil
}

func newTestIdentity(repo *stubCallerRepository) IIdentityService {
	uow := &stubUnitOfWork{callers: repo}
	return NewIdentityService(&stubUowFactory{uow: uow})
}

func TestResolveUnknownCallerIsGuest(t *testing.T) {
	repo := newStubCallerRepository()
	svc := newTestIdentity(repo)

	caller, err := svc.Resolve(context.Background(), "U-unknown")

	require.NoError(t, err)
	require.NotNil(t, caller)
	assert.Equal(t, constant.RoleGuest, caller.Role)
	assert.Empty(t, repo.store, "resolving must not persist guests")
}

func TestResolveEmptyIdIsGuestWithoutLookup(t *testing.T) {
	repo := newStubCallerRepository()
	svc := newTestIdentity(repo)

	caller, err := svc.Resolve(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, constant.RoleGuest, caller.Role)
	assert.Zero(t, repo.findCalls)
}

func TestRegisterPromotesToStaff(t *testing.T) {
	repo := newStubCallerRepository()
	svc := newTestIdentity(repo)

	caller, err := svc.Register(context.Background(), "U42", "สมชาย", "หอผู้ป่วยใน")

	require.NoError(t, err)
	assert.Equal(t, constant.RoleStaff, caller.Role)
	assert.Equal(t, "สมชาย", caller.DisplayName)
	assert.Equal(t, "หอผู้ป่วยใน", caller.Department)

	stored := repo.store["U42"]
	require.NotNil(t, stored)
	assert.Equal(t, constant.RoleStaff, stored.Role)
}

func TestRegisterIsIdempotent(t *testing.T) {
	repo := newStubCallerRepository()
	svc := newTestIdentity(repo)

	_, err := svc.Register(context.Background(), "U42", "สมชาย", "หอผู้ป่วยใน")
	require.NoError(t, err)
	again, err := svc.Register(context.Background(), "U42", "สมชาย", "หอผู้ป่วยใน")
	require.NoError(t, err)

	assert.Len(t, repo.store, 1)
	assert.Equal(t, "สมชาย", again.DisplayName)
	assert.Equal(t, "หอผู้ป่วยใน", again.Department)
}

func TestRegisterOverwritesNameAndDepartment(t *testing.T) {
	repo := newStubCallerRepository()
	svc := newTestIdentity(repo)

	_, err := svc.Register(context.Background(), "U42", "ชื่อเดิม", "แผนกเดิม")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "U42", "ชื่อใหม่", "แผนกใหม่")
	require.NoError(t, err)

	stored := repo.store["U42"]
	assert.Equal(t, "ชื่อใหม่", stored.DisplayName)
	assert.Equal(t, "แผนกใหม่", stored.Department)
}

func TestResolveUsesCacheAfterRegister(t *testing.T) {
	repo := newStubCallerRepository()
	svc := newTestIdentity(repo)

	_, err := svc.Register(context.Background(), "U42", "สมชาย", "หอผู้ป่วยใน")
	require.NoError(t, err)

	caller, err := svc.Resolve(context.Background(), "U42")
	require.NoError(t, err)

	assert.Equal(t, constant.RoleStaff, caller.Role)
	assert.Zero(t, repo.findCalls, "cached role must not hit the database")
}

func TestRegisterRequiresExternalId(t *testing.T) {
	svc := newTestIdentity(newStubCallerRepository())

	_, err := svc.Register(context.Background(), "", "ชื่อ", "แผนก")

	assert.Error(t, err)
}
