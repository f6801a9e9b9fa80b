package mapper

import (
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/model"
)

type CallerMapper struct{}

func NewCallerMapper() *CallerMapper { return &CallerMapper{} }

func (m *CallerMapper) ToEntity(r *model.Caller) *entity.Caller {
	return &entity.Caller{
		ExternalId:  r.ExternalId,
		DisplayName: r.DisplayName,
		Department:  r.Department,
		Role:        r.Role,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *CallerMapper) ToModel(e *entity.Caller) *model.Caller {
	return &model.Caller{
		ExternalId:  e.ExternalId,
		DisplayName: e.DisplayName,
		Department:  e.Department,
		Role:        e.Role,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
