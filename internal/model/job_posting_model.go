package model

import (
	"time"

	"github.com/google/uuid"
)

type JobPosting struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       string    `gorm:"not null"`
	Description    string
	Qualifications string
	Openings       int
	CloseDate      *time.Time `gorm:"index"`
	ContactInfo    string
	Status         string
	Visibility     string `gorm:"default:public;index"`
	CreatedAt      time.Time
}

func (JobPosting) TableName() string { return "job_postings" }
