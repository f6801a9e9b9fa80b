package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type JobPosting struct {
	Id             uuid.UUID
	Position       string
	Description    string
	Qualifications string
	Openings       int
	CloseDate      *time.Time
	ContactInfo    string
	Status         string
	Visibility     string
	CreatedAt      time.Time
}

func (j *JobPosting) RecordId() uuid.UUID { return j.Id }

func (j *JobPosting) RecordTitle() string { return j.Position }

func (j *JobPosting) RecordFields() []Field {
	var fields []Field
	fields = appendField(fields, "รายละเอียด", j.Description)
	fields = appendField(fields, "คุณสมบัติ", j.Qualifications)
	if j.Openings > 0 {
		fields = appendField(fields, "จำนวนอัตรา", strconv.Itoa(j.Openings))
	}
	fields = appendField(fields, "ปิดรับสมัคร", formatThaiDate(j.CloseDate))
	fields = appendField(fields, "ติดต่อ", j.ContactInfo)
	fields = appendField(fields, "สถานะ", j.Status)
	return fields
}
