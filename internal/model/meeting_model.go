package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Topic       string    `gorm:"not null"`
	Agenda      string
	ScheduledAt *time.Time `gorm:"index"`
	Location    string
	MeetingLink string
	MeetingNo   string
	Passcode    string
	Chairperson string
	Status      string
	Visibility  string `gorm:"default:public;index"`
	CreatedAt   time.Time
}

func (Meeting) TableName() string { return "meetings" }
