package mapper

import (
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/model"
)

// Per-category model<->entity mappers. Conversion is mechanical but kept
// explicit so the persistence shape can drift from the domain shape.

type TrainingMapper struct{}

func NewTrainingMapper() *TrainingMapper { return &TrainingMapper{} }

func (m *TrainingMapper) ToEntity(r *model.TrainingCourse) *entity.TrainingCourse {
	return &entity.TrainingCourse{
		Id:          r.Id,
		CourseName:  r.CourseName,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		CneuPoints:  r.CneuPoints,
		Organizer:   r.Organizer,
		ContactInfo: r.ContactInfo,
		Status:      r.Status,
		Visibility:  r.Visibility,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *TrainingMapper) ToModel(e *entity.TrainingCourse) *model.TrainingCourse {
	return &model.TrainingCourse{
		Id:          e.Id,
		CourseName:  e.CourseName,
		Description: e.Description,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		CneuPoints:  e.CneuPoints,
		Organizer:   e.Organizer,
		ContactInfo: e.ContactInfo,
		Status:      e.Status,
		Visibility:  e.Visibility,
		CreatedAt:   e.CreatedAt,
	}
}

type MeetingMapper struct{}

func NewMeetingMapper() *MeetingMapper { return &MeetingMapper{} }

func (m *MeetingMapper) ToEntity(r *model.Meeting) *entity.Meeting {
	return &entity.Meeting{
		Id:          r.Id,
		Topic:       r.Topic,
		Agenda:      r.Agenda,
		ScheduledAt: r.ScheduledAt,
		Location:    r.Location,
		MeetingLink: r.MeetingLink,
		MeetingNo:   r.MeetingNo,
		Passcode:    r.Passcode,
		Chairperson: r.Chairperson,
		Status:      r.Status,
		Visibility:  r.Visibility,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *MeetingMapper) ToModel(e *entity.Meeting) *model.Meeting {
	return &model.Meeting{
		Id:          e.Id,
		Topic:       e.Topic,
		Agenda:      e.Agenda,
		ScheduledAt: e.ScheduledAt,
		Location:    e.Location,
		MeetingLink: e.MeetingLink,
		MeetingNo:   e.MeetingNo,
		Passcode:    e.Passcode,
		Chairperson: e.Chairperson,
		Status:      e.Status,
		Visibility:  e.Visibility,
		CreatedAt:   e.CreatedAt,
	}
}

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper { return &ProjectMapper{} }

func (m *ProjectMapper) ToEntity(r *model.Project) *entity.Project {
	return &entity.Project{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Owner:       r.Owner,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		ContactInfo: r.ContactInfo,
		Visibility:  r.Visibility,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *ProjectMapper) ToModel(e *entity.Project) *model.Project {
	return &model.Project{
		Id:          e.Id,
		Name:        e.Name,
		Description: e.Description,
		Owner:       e.Owner,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      e.Status,
		ContactInfo: e.ContactInfo,
		Visibility:  e.Visibility,
		CreatedAt:   e.CreatedAt,
	}
}

type OrgUnitMapper struct{}

func NewOrgUnitMapper() *OrgUnitMapper { return &OrgUnitMapper{} }

func (m *OrgUnitMapper) ToEntity(r *model.OrgUnit) *entity.OrgUnit {
	return &entity.OrgUnit{
		Id:         r.Id,
		Name:       r.Name,
		Mission:    r.Mission,
		Head:       r.Head,
		Phone:      r.Phone,
		Email:      r.Email,
		Building:   r.Building,
		Visibility: r.Visibility,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *OrgUnitMapper) ToModel(e *entity.OrgUnit) *model.OrgUnit {
	return &model.OrgUnit{
		Id:         e.Id,
		Name:       e.Name,
		Mission:    e.Mission,
		Head:       e.Head,
		Phone:      e.Phone,
		Email:      e.Email,
		Building:   e.Building,
		Visibility: e.Visibility,
		CreatedAt:  e.CreatedAt,
	}
}

type JobPostingMapper struct{}

func NewJobPostingMapper() *JobPostingMapper { return &JobPostingMapper{} }

func (m *JobPostingMapper) ToEntity(r *model.JobPosting) *entity.JobPosting {
	return &entity.JobPosting{
		Id:             r.Id,
		Position:       r.Position,
		Description:    r.Description,
		Qualifications: r.Qualifications,
		Openings:       r.Openings,
		CloseDate:      r.CloseDate,
		ContactInfo:    r.ContactInfo,
		Status:         r.Status,
		Visibility:     r.Visibility,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *JobPostingMapper) ToModel(e *entity.JobPosting) *model.JobPosting {
	return &model.JobPosting{
		Id:             e.Id,
		Position:       e.Position,
		Description:    e.Description,
		Qualifications: e.Qualifications,
		Openings:       e.Openings,
		CloseDate:      e.CloseDate,
		ContactInfo:    e.ContactInfo,
		Status:         e.Status,
		Visibility:     e.Visibility,
		CreatedAt:      e.CreatedAt,
	}
}

type NewsMapper struct{}

func NewNewsMapper() *NewsMapper { return &NewsMapper{} }

func (m *NewsMapper) ToEntity(r *model.NewsItem) *entity.NewsItem {
	return &entity.NewsItem{
		Id:          r.Id,
		Headline:    r.Headline,
		Body:        r.Body,
		PublishedAt: r.PublishedAt,
		Link:        r.Link,
		Status:      r.Status,
		Visibility:  r.Visibility,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *NewsMapper) ToModel(e *entity.NewsItem) *model.NewsItem {
	return &model.NewsItem{
		Id:          e.Id,
		Headline:    e.Headline,
		Body:        e.Body,
		PublishedAt: e.PublishedAt,
		Link:        e.Link,
		Status:      e.Status,
		Visibility:  e.Visibility,
		CreatedAt:   e.CreatedAt,
	}
}
