package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID
	Name        string
	Description string
	Owner       string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      string
	ContactInfo string
	Visibility  string
	CreatedAt   time.Time
}

func (p *Project) RecordId() uuid.UUID { return p.Id }

func (p *Project) RecordTitle() string { return p.Name }

func (p *Project) RecordFields() []Field {
	var fields []Field
	fields = appendField(fields, "รายละเอียด", p.Description)
	fields = appendField(fields, "ผู้รับผิดชอบ", p.Owner)
	fields = appendField(fields, "วันที่เริ่ม", formatThaiDate(p.StartDate))
	fields = appendField(fields, "วันที่สิ้นสุด", formatThaiDate(p.EndDate))
	fields = appendField(fields, "สถานะ", p.Status)
	fields = appendField(fields, "ติดต่อ", p.ContactInfo)
	return fields
}
