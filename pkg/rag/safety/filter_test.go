package safety

import "testing"

func TestBlocked(t *testing.T) {
	filter := NewFilter([]string{"เงินเดือน", "สลิป", "รหัสผ่าน", "Admin"})

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{
			name:  "clean query passes",
			query: "อบรมเดือนนี้มีอะไรบ้าง",
			want:  false,
		},
		{
			name:  "restricted term blocks",
			query: "ขอดูเงินเดือนของพยาบาล",
			want:  true,
		},
		{
			name:  "term inside longer word blocks",
			query: "สลิปเงินเดือนเดือนล่าสุด",
			want:  true,
		},
		{
			name:  "latin term is case-insensitive",
			query: "ขอสิทธิ์ ADMIN หน่อย",
			want:  true,
		},
		{
			name:  "denylist casing does not matter",
			query: "admin access",
			want:  true,
		},
		{
			name:  "empty query passes",
			query: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Blocked(tt.query); got != tt.want {
				t.Errorf("Blocked(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
