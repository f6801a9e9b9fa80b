package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Owner       string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
	ContactInfo string
	Visibility  string `gorm:"default:public;index"`
	CreatedAt   time.Time
}

func (Project) TableName() string { return "projects" }
