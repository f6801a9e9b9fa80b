package entity

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id          uuid.UUID
	Topic       string
	Agenda      string
	ScheduledAt *time.Time
	Location    string
	MeetingLink string
	MeetingNo   string
	Passcode    string
	Chairperson string
	Status      string
	Visibility  string
	CreatedAt   time.Time
}

func (m *Meeting) RecordId() uuid.UUID { return m.Id }

func (m *Meeting) RecordTitle() string { return m.Topic }

func (m *Meeting) RecordFields() []Field {
	var fields []Field
	fields = appendField(fields, "วาระ", m.Agenda)
	fields = appendField(fields, "วันเวลาประชุม", formatThaiDateTime(m.ScheduledAt))
	fields = appendField(fields, "สถานที่", m.Location)
	fields = appendField(fields, "ลิงก์ประชุม", m.MeetingLink)
	// Meeting number and passcode belong together; keep them adjacent.
	fields = appendField(fields, "หมายเลขห้องประชุม", m.MeetingNo)
	fields = appendField(fields, "รหัสผ่านประชุม", m.Passcode)
	fields = appendField(fields, "ประธาน", m.Chairperson)
	fields = appendField(fields, "สถานะ", m.Status)
	return fields
}
