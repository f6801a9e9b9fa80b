package entity

import (
	"time"

	"github.com/google/uuid"
)

type NewsItem struct {
	Id          uuid.UUID
	Headline    string
	Body        string
	PublishedAt *time.Time
	Link        string
	Status      string
	Visibility  string
	CreatedAt   time.Time
}

func (n *NewsItem) RecordId() uuid.UUID { return n.Id }

func (n *NewsItem) RecordTitle() string { return n.Headline }

func (n *NewsItem) RecordFields() []Field {
	var fields []Field
	fields = appendField(fields, "เนื้อหา", n.Body)
	fields = appendField(fields, "วันที่ประกาศ", formatThaiDate(n.PublishedAt))
	fields = appendField(fields, "ลิงก์", n.Link)
	return fields
}
