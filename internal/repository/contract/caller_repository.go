package contract

import (
	"context"

	"nursing-assistant-be/internal/entity"
)

type CallerRepository interface {
	// FindByExternalId returns nil, nil when the caller is unknown.
	FindByExternalId(ctx context.Context, externalId string) (*entity.Caller, error)
	// Upsert inserts or overwrites name/department for an existing caller.
	// Idempotent: repeating the same registration leaves the row unchanged.
	Upsert(ctx context.Context, caller *entity.Caller) error
}
