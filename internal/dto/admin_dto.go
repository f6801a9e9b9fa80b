package dto

import (
	"time"

	"nursing-assistant-be/internal/entity"

	"github.com/google/uuid"
)

// Per-category admin payloads. Each request knows how to project itself into
// its entity; visibility defaults to public when omitted.

type TrainingRequest struct {
	CourseName  string     `json:"course_name" validate:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    string     `json:"location"`
	CneuPoints  float64    `json:"cneu_points"`
	Organizer   string     `json:"organizer"`
	ContactInfo string     `json:"contact_info"`
	Status      string     `json:"status"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=public staff"`
}

func (r *TrainingRequest) ToEntity(id uuid.UUID) *entity.TrainingCourse {
	return &entity.TrainingCourse{
		Id:          id,
		CourseName:  r.CourseName,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		CneuPoints:  r.CneuPoints,
		Organizer:   r.Organizer,
		ContactInfo: r.ContactInfo,
		Status:      r.Status,
		Visibility:  defaultVisibility(r.Visibility),
	}
}

type MeetingRequest struct {
	Topic       string     `json:"topic" validate:"required"`
	Agenda      string     `json:"agenda"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Location    string     `json:"location"`
	MeetingLink string     `json:"meeting_link"`
	MeetingNo   string     `json:"meeting_no"`
	Passcode    string     `json:"passcode"`
	Chairperson string     `json:"chairperson"`
	Status      string     `json:"status"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=public staff"`
}

func (r *MeetingRequest) ToEntity(id uuid.UUID) *entity.Meeting {
	return &entity.Meeting{
		Id:          id,
		Topic:       r.Topic,
		Agenda:      r.Agenda,
		ScheduledAt: r.ScheduledAt,
		Location:    r.Location,
		MeetingLink: r.MeetingLink,
		MeetingNo:   r.MeetingNo,
		Passcode:    r.Passcode,
		Chairperson: r.Chairperson,
		Status:      r.Status,
		Visibility:  defaultVisibility(r.Visibility),
	}
}

type ProjectRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Owner       string     `json:"owner"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `json:"status"`
	ContactInfo string     `json:"contact_info"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=public staff"`
}

func (r *ProjectRequest) ToEntity(id uuid.UUID) *entity.Project {
	return &entity.Project{
		Id:          id,
		Name:        r.Name,
		Description: r.Description,
		Owner:       r.Owner,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		ContactInfo: r.ContactInfo,
		Visibility:  defaultVisibility(r.Visibility),
	}
}

type OrgUnitRequest struct {
	Name       string `json:"name" validate:"required"`
	Mission    string `json:"mission"`
	Head       string `json:"head"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	Building   string `json:"building"`
	Visibility string `json:"visibility" validate:"omitempty,oneof=public staff"`
}

func (r *OrgUnitRequest) ToEntity(id uuid.UUID) *entity.OrgUnit {
	return &entity.OrgUnit{
		Id:         id,
		Name:       r.Name,
		Mission:    r.Mission,
		Head:       r.Head,
		Phone:      r.Phone,
		Email:      r.Email,
		Building:   r.Building,
		Visibility: defaultVisibility(r.Visibility),
	}
}

type JobPostingRequest struct {
	Position       string     `json:"position" validate:"required"`
	Description    string     `json:"description"`
	Qualifications string     `json:"qualifications"`
	Openings       int        `json:"openings"`
	CloseDate      *time.Time `json:"close_date"`
	ContactInfo    string     `json:"contact_info"`
	Status         string     `json:"status"`
	Visibility     string     `json:"visibility" validate:"omitempty,oneof=public staff"`
}

func (r *JobPostingRequest) ToEntity(id uuid.UUID) *entity.JobPosting {
	return &entity.JobPosting{
		Id:             id,
		Position:       r.Position,
		Description:    r.Description,
		Qualifications: r.Qualifications,
		Openings:       r.Openings,
		CloseDate:      r.CloseDate,
		ContactInfo:    r.ContactInfo,
		Status:         r.Status,
		Visibility:     defaultVisibility(r.Visibility),
	}
}

type NewsRequest struct {
	Headline    string     `json:"headline" validate:"required"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"published_at"`
	Link        string     `json:"link"`
	Status      string     `json:"status"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=public staff"`
}

func (r *NewsRequest) ToEntity(id uuid.UUID) *entity.NewsItem {
	return &entity.NewsItem{
		Id:          id,
		Headline:    r.Headline,
		Body:        r.Body,
		PublishedAt: r.PublishedAt,
		Link:        r.Link,
		Status:      r.Status,
		Visibility:  defaultVisibility(r.Visibility),
	}
}

func defaultVisibility(v string) string {
	if v == "" {
		return "public"
	}
	return v
}

// RecordSummaryResponse is the admin listing projection shared by all
// categories.
type RecordSummaryResponse struct {
	Id     uuid.UUID      `json:"id"`
	Title  string         `json:"title"`
	Fields []entity.Field `json:"fields"`
}

type IngestDocumentRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Access    string `json:"access" validate:"omitempty,oneof=public staff"`
	Namespace string `json:"namespace"`
}

type IngestDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type DocumentSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	Namespace string    `json:"namespace"`
	Title     string    `json:"title"`
	Access    string    `json:"access"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	Actor     string                 `json:"actor"`
	Action    string                 `json:"action"`
	Target    string                 `json:"target"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EmbedDocumentMessage is the payload published to the embedding worker when
// an admin ingests a document. The worker owns the embedding call and the
// final insert.
type EmbedDocumentMessage struct {
	Id        uuid.UUID `json:"id"`
	Namespace string    `json:"namespace"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Access    string    `json:"access"`
}
