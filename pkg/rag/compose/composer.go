package compose

import (
	"strings"

	"nursing-assistant-be/internal/constant"
)

// Compose merges the vector and relational results into one role-annotated
// context blob. Section order is fixed: role line, supporting documents,
// database records. No truncation happens here; size limits are the
// generation step's concern.
func Compose(role, displayName, vectorText, relationalText string) string {
	var b strings.Builder

	b.WriteString(constant.ContextRolePrefix)
	if role == constant.RoleStaff {
		b.WriteString(constant.ContextRoleStaffLabel)
		if displayName != "" {
			b.WriteString(" (")
			b.WriteString(displayName)
			b.WriteString(")")
		}
	} else {
		b.WriteString(constant.ContextRoleGuestLabel)
	}
	b.WriteString("\n\n")

	b.WriteString(constant.ContextDocumentsHeading)
	b.WriteString("\n")
	b.WriteString(vectorText)
	b.WriteString("\n\n")

	b.WriteString(constant.ContextRecordsHeading)
	b.WriteString("\n")
	b.WriteString(relationalText)

	return b.String()
}

// Empty reports whether neither retrieval path produced content.
func Empty(vectorText, relationalText string) bool {
	return strings.TrimSpace(vectorText) == "" && strings.TrimSpace(relationalText) == ""
}
