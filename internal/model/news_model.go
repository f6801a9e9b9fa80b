package model

import (
	"time"

	"github.com/google/uuid"
)

type NewsItem struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Headline    string    `gorm:"not null"`
	Body        string
	PublishedAt *time.Time `gorm:"index"`
	Link        string
	Status      string
	Visibility  string `gorm:"default:public;index"`
	CreatedAt   time.Time
}

func (NewsItem) TableName() string { return "news_items" }
