package compose

import (
	"strings"
	"testing"

	"nursing-assistant-be/internal/constant"
)

func TestCompose(t *testing.T) {
	blob := Compose(constant.RoleStaff, "สมชาย", "เอกสาร ก", "📌 รายการ ข")

	if !strings.HasPrefix(blob, constant.ContextRolePrefix+constant.ContextRoleStaffLabel) {
		t.Errorf("blob does not start with role line: %q", blob)
	}
	if !strings.Contains(blob, "(สมชาย)") {
		t.Errorf("staff display name missing: %q", blob)
	}

	docIdx := strings.Index(blob, constant.ContextDocumentsHeading)
	recIdx := strings.Index(blob, constant.ContextRecordsHeading)
	if docIdx == -1 || recIdx == -1 {
		t.Fatalf("section headings missing: %q", blob)
	}
	if docIdx > recIdx {
		t.Errorf("documents section must precede records section")
	}
	if !strings.Contains(blob, "เอกสาร ก") || !strings.Contains(blob, "📌 รายการ ข") {
		t.Errorf("section contents missing: %q", blob)
	}
}

func TestComposeGuestHasNoName(t *testing.T) {
	blob := Compose(constant.RoleGuest, "ชื่อที่ไม่ควรโผล่", "x", "y")

	if !strings.Contains(blob, constant.ContextRolePrefix+constant.ContextRoleGuestLabel) {
		t.Errorf("guest role line missing: %q", blob)
	}
	if strings.Contains(blob, "ชื่อที่ไม่ควรโผล่") {
		t.Errorf("guest blob must not carry a display name: %q", blob)
	}
}

func TestEmpty(t *testing.T) {
	tests := []struct {
		vector     string
		relational string
		want       bool
	}{
		{"", "", true},
		{"  \n ", "\t", true},
		{"doc", "", false},
		{"", "records", false},
	}

	for _, tt := range tests {
		if got := Empty(tt.vector, tt.relational); got != tt.want {
			t.Errorf("Empty(%q, %q) = %v, want %v", tt.vector, tt.relational, got, tt.want)
		}
	}
}
