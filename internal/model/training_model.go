package model

import (
	"time"

	"github.com/google/uuid"
)

type TrainingCourse struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseName  string    `gorm:"not null"`
	Description string
	StartDate   *time.Time `gorm:"index"`
	EndDate     *time.Time
	Location    string
	CneuPoints  float64
	Organizer   string
	ContactInfo string
	Status      string
	Visibility  string `gorm:"default:public;index"`
	CreatedAt   time.Time
}

func (TrainingCourse) TableName() string { return "training_courses" }
