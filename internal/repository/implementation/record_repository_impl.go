package implementation

import (
	"context"
	"errors"
	"fmt"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/mapper"
	"nursing-assistant-be/internal/model"
	"nursing-assistant-be/internal/repository/contract"
	"nursing-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordRepositoryImpl is the shared implementation behind every category
// collection. The type parameter is the GORM model; category metadata
// (searchable columns, default ordering) is fixed at construction so the
// retriever never deals with table-level details.
type RecordRepositoryImpl[M any] struct {
	db            *gorm.DB
	searchColumns []string
	orderField    string
	orderDesc     bool
	toEntity      func(*M) entity.Record
	toModel       func(entity.Record) (*M, error)
}

func (r *RecordRepositoryImpl[M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecordRepositoryImpl[M]) defaultOrder() specification.Specification {
	return specification.OrderBy{Field: r.orderField, Desc: r.orderDesc}
}

func (r *RecordRepositoryImpl[M]) find(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	var models []*M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	records := make([]entity.Record, len(models))
	for i, m := range models {
		records[i] = r.toEntity(m)
	}
	return records, nil
}

func (r *RecordRepositoryImpl[M]) FindMatching(ctx context.Context, text string, specs ...specification.Specification) ([]entity.Record, error) {
	all := append([]specification.Specification{
		specification.ContainsText{Query: text, Columns: r.searchColumns},
		r.defaultOrder(),
	}, specs...)
	return r.find(ctx, all...)
}

func (r *RecordRepositoryImpl[M]) FindLatest(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	all := append([]specification.Specification{r.defaultOrder()}, specs...)
	return r.find(ctx, all...)
}

func (r *RecordRepositoryImpl[M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Record, error) {
	return r.find(ctx, specs...)
}

func (r *RecordRepositoryImpl[M]) FindOne(ctx context.Context, specs ...specification.Specification) (entity.Record, error) {
	var m M
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *RecordRepositoryImpl[M]) Create(ctx context.Context, record entity.Record) error {
	m, err := r.toModel(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *RecordRepositoryImpl[M]) Update(ctx context.Context, record entity.Record) error {
	m, err := r.toModel(record)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *RecordRepositoryImpl[M]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(M), "id = ?", id).Error
}

func (r *RecordRepositoryImpl[M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(new(M)).Count(&count).Error
	return count, err
}

// assertRecord narrows entity.Record to the category's concrete entity type.
func assertRecord[E any](record entity.Record) (*E, error) {
	typed, ok := any(record).(*E)
	if !ok {
		return nil, fmt.Errorf("record type mismatch: got %T", record)
	}
	return typed, nil
}

// Category constructors. Searchable columns and default ordering mirror the
// category definitions: future-dated collections order chronologically
// ascending, the rest by recency descending.

func NewTrainingRepository(db *gorm.DB) contract.RecordRepository {
	m := mapper.NewTrainingMapper()
	return &RecordRepositoryImpl[model.TrainingCourse]{
		db:            db,
		searchColumns: []string{"course_name", "description", "location"},
		orderField:    "start_date",
		toEntity: func(r *model.TrainingCourse) entity.Record {
			return m.ToEntity(r)
		},
		toModel: func(record entity.Record) (*model.TrainingCourse, error) {
			e, err := assertRecord[entity.TrainingCourse](record)
			if err != nil {
				return nil, err
			}
			return m.ToModel(e), nil
		},
	}
}

func NewMeetingRepository(db *gorm.DB) contract.RecordRepository {
	m := mapper.NewMeetingMapper()
	return &RecordRepositoryImpl[model.Meeting]{
		db:            db,
		searchColumns: []string{"topic", "agenda"},
		orderField:    "scheduled_at",
		toEntity: func(r *model.Meeting) entity.Record {
			return m.ToEntity(r)
		},
		toModel: func(record entity.Record) (*model.Meeting, error) {
			e, err := assertRecord[entity.Meeting](record)
			if err != nil {
				return nil, err
			}
			return m.ToModel(e), nil
		},
	}
}

func NewProjectRepository(db *gorm.DB) contract.RecordRepository {
	m := mapper.NewProjectMapper()
	return &RecordRepositoryImpl[model.Project]{
		db:            db,
		searchColumns: []string{"name", "description", "owner"},
		orderField:    "created_at",
		orderDesc:     true,
		toEntity: func(r *model.Project) entity.Record {
			return m.ToEntity(r)
		},
		toModel: func(record entity.Record) (*model.Project, error) {
			e, err := assertRecord[entity.Project](record)
			if err != nil {
				return nil, err
			}
			return m.ToModel(e), nil
		},
	}
}

func NewOrgUnitRepository(db *gorm.DB) contract.RecordRepository {
	m := mapper.NewOrgUnitMapper()
	return &RecordRepositoryImpl[model.OrgUnit]{
		db:            db,
		searchColumns: []string{"name", "mission", "head"},
		orderField:    "created_at",
		orderDesc:     true,
		toEntity: func(r *model.OrgUnit) entity.Record {
			return m.ToEntity(r)
		},
		toModel: func(record entity.Record) (*model.OrgUnit, error) {
			e, err := assertRecord[entity.OrgUnit](record)
			if err != nil {
				return nil, err
			}
			return m.ToModel(e), nil
		},
	}
}

func NewJobPostingRepository(db *gorm.DB) contract.RecordRepository {
	m := mapper.NewJobPostingMapper()
	return &RecordRepositoryImpl[model.JobPosting]{
		db:            db,
		searchColumns: []string{"position", "description", "qualifications"},
		orderField:    "close_date",
		toEntity: func(r *model.JobPosting) entity.Record {
			return m.ToEntity(r)
		},
		toModel: func(record entity.Record) (*model.JobPosting, error) {
			e, err := assertRecord[entity.JobPosting](record)
			if err != nil {
				return nil, err
			}
			return m.ToModel(e), nil
		},
	}
}

func NewNewsRepository(db *gorm.DB) contract.RecordRepository {
	m := mapper.NewNewsMapper()
	return &RecordRepositoryImpl[model.NewsItem]{
		db:            db,
		searchColumns: []string{"headline", "body"},
		orderField:    "published_at",
		orderDesc:     true,
		toEntity: func(r *model.NewsItem) entity.Record {
			return m.ToEntity(r)
		},
		toModel: func(record entity.Record) (*model.NewsItem, error) {
			e, err := assertRecord[entity.NewsItem](record)
			if err != nil {
				return nil, err
			}
			return m.ToModel(e), nil
		},
	}
}
