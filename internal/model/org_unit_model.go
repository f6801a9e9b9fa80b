package model

import (
	"time"

	"github.com/google/uuid"
)

type OrgUnit struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	Mission    string
	Head       string
	Phone      string
	Email      string
	Building   string
	Visibility string `gorm:"default:public;index"`
	CreatedAt  time.Time
}

func (OrgUnit) TableName() string { return "org_units" }
