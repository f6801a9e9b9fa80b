package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrgUnit struct {
	Id         uuid.UUID
	Name       string
	Mission    string
	Head       string
	Phone      string
	Email      string
	Building   string
	Visibility string
	CreatedAt  time.Time
}

func (u *OrgUnit) RecordId() uuid.UUID { return u.Id }

func (u *OrgUnit) RecordTitle() string { return u.Name }

func (u *OrgUnit) RecordFields() []Field {
	var fields []Field
	fields = appendField(fields, "ภารกิจ", u.Mission)
	fields = appendField(fields, "หัวหน้าหน่วยงาน", u.Head)
	fields = appendField(fields, "โทรศัพท์", u.Phone)
	fields = appendField(fields, "อีเมล", u.Email)
	fields = appendField(fields, "อาคาร/สถานที่", u.Building)
	return fields
}
