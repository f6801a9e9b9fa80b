package service

import (
	"context"
	"fmt"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

type IIdentityService interface {
	// Resolve never returns nil: an unknown external id yields an unsaved
	// guest caller.
	Resolve(ctx context.Context, externalId string) (*entity.Caller, error)

	// Register upserts a staff caller. Re-registration with the same data is
	// idempotent; new name/department overwrite the previous values.
	Register(ctx context.Context, externalId, displayName, department string) (*entity.Caller, error)
}

type identityService struct {
	uowFactory unitofwork.RepositoryFactory
	roleCache  *gocache.Cache
}

func NewIdentityService(uowFactory unitofwork.RepositoryFactory) IIdentityService {
	return &identityService{
		uowFactory: uowFactory,
		// Role changes are rare; a short TTL keeps revocations from
		// lingering too long.
		roleCache: gocache.New(10*time.Minute, 15*time.Minute),
	}
}

func (s *identityService) Resolve(ctx context.Context, externalId string) (*entity.Caller, error) {
	if externalId == "" {
		return guestCaller(externalId), nil
	}

	if cached, found := s.roleCache.Get(externalId); found {
		if caller, ok := cached.(*entity.Caller); ok {
			return caller, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	caller, err := uow.CallerRepository().FindByExternalId(ctx, externalId)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	if caller == nil {
		caller = guestCaller(externalId)
	}

	s.roleCache.Set(externalId, caller, gocache.DefaultExpiration)
	return caller, nil
}

func (s *identityService) Register(ctx context.Context, externalId, displayName, department string) (*entity.Caller, error) {
	if externalId == "" {
		return nil, fmt.Errorf("registration requires an external id")
	}

	caller := &entity.Caller{
		ExternalId:  externalId,
		DisplayName: displayName,
		Department:  department,
		Role:        constant.RoleStaff,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CallerRepository().Upsert(ctx, caller); err != nil {
		return nil, fmt.Errorf("failed to register caller: %w", err)
	}

	s.roleCache.Set(externalId, caller, gocache.DefaultExpiration)
	return caller, nil
}

func guestCaller(externalId string) *entity.Caller {
	return &entity.Caller{
		ExternalId: externalId,
		Role:       constant.RoleGuest,
	}
}
