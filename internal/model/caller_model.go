package model

import "time"

type Caller struct {
	ExternalId  string `gorm:"primaryKey"`
	DisplayName string
	Department  string
	Role        string `gorm:"default:guest"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (Caller) TableName() string { return "callers" }
