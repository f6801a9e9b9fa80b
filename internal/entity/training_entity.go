package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TrainingCourse struct {
	Id          uuid.UUID
	CourseName  string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Location    string
	CneuPoints  float64
	Organizer   string
	ContactInfo string
	Status      string
	Visibility  string
	CreatedAt   time.Time
}

func (t *TrainingCourse) RecordId() uuid.UUID { return t.Id }

func (t *TrainingCourse) RecordTitle() string { return t.CourseName }

func (t *TrainingCourse) RecordFields() []Field {
	var fields []Field
	fields = appendField(fields, "รายละเอียด", t.Description)
	fields = appendField(fields, "วันที่เริ่ม", formatThaiDate(t.StartDate))
	fields = appendField(fields, "วันที่สิ้นสุด", formatThaiDate(t.EndDate))
	fields = appendField(fields, "สถานที่", t.Location)
	if t.CneuPoints > 0 {
		fields = appendField(fields, "หน่วยคะแนน CNEU", fmt.Sprintf("%.1f", t.CneuPoints))
	}
	fields = appendField(fields, "หน่วยงานผู้จัด", t.Organizer)
	fields = appendField(fields, "ติดต่อ", t.ContactInfo)
	fields = appendField(fields, "สถานะ", t.Status)
	return fields
}
