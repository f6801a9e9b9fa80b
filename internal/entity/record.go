package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Field is one human-readable attribute of a record, already label-mapped.
type Field struct {
	Label string
	Value string
}

// Record is the common shape shared by every category's rows. RecordFields
// returns only presentable attributes in display order: internal columns
// (id, created_at, visibility) are never included, and implementations skip
// empty values.
type Record interface {
	RecordId() uuid.UUID
	RecordTitle() string
	RecordFields() []Field
}

// appendField skips empty values so formatting never renders blank lines.
func appendField(fields []Field, label, value string) []Field {
	if value == "" {
		return fields
	}
	return append(fields, Field{Label: label, Value: value})
}

// formatThaiDate renders a date in Buddhist-era day/month/year form.
func formatThaiDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%d", t.Day(), int(t.Month()), t.Year()+543)
}

// formatThaiDateTime includes the time of day.
func formatThaiDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%s %02d:%02d น.", formatThaiDate(t), t.Hour(), t.Minute())
}
