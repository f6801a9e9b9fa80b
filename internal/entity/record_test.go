package entity

import (
	"testing"
	"time"
)

func TestTrainingRecordFields(t *testing.T) {
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	course := &TrainingCourse{
		CourseName: "การช่วยฟื้นคืนชีพขั้นสูง",
		StartDate:  &start,
		Location:   "ห้องประชุม 1",
		CneuPoints: 12.5,
		Visibility: "staff",
	}

	fields := course.RecordFields()

	// Buddhist-era date
	found := false
	for _, f := range fields {
		if f.Label == "วันที่เริ่ม" {
			found = true
			if f.Value != "15/03/2569" {
				t.Errorf("start date = %q, want Buddhist-era 15/03/2569", f.Value)
			}
		}
		// Internal attributes must never surface as fields.
		if f.Value == "staff" {
			t.Errorf("visibility leaked into presentable fields")
		}
	}
	if !found {
		t.Error("start date field missing")
	}

	// Empty attributes are skipped entirely.
	for _, f := range fields {
		if f.Value == "" {
			t.Errorf("empty value rendered for label %q", f.Label)
		}
	}
}

func TestMeetingKeepsNumberAndPasscodeAdjacent(t *testing.T) {
	m := &Meeting{
		Topic:     "ประชุมกรรมการบริหาร",
		MeetingNo: "981 2345 678",
		Passcode:  "112233",
	}

	fields := m.RecordFields()
	noIdx, passIdx := -1, -1
	for i, f := range fields {
		switch f.Label {
		case "หมายเลขห้องประชุม":
			noIdx = i
		case "รหัสผ่านประชุม":
			passIdx = i
		}
	}
	if noIdx == -1 || passIdx == -1 {
		t.Fatal("meeting number or passcode field missing")
	}
	if passIdx != noIdx+1 {
		t.Errorf("passcode at %d, meeting number at %d; they must be adjacent", passIdx, noIdx)
	}
}

func TestZeroNumericFieldsAreSkipped(t *testing.T) {
	j := &JobPosting{Position: "พยาบาลวิชาชีพ", Openings: 0}
	for _, f := range j.RecordFields() {
		if f.Label == "จำนวนอัตรา" {
			t.Error("zero openings must not render")
		}
	}

	c := &TrainingCourse{CourseName: "x", CneuPoints: 0}
	for _, f := range c.RecordFields() {
		if f.Label == "หน่วยคะแนน CNEU" {
			t.Error("zero CNEU points must not render")
		}
	}
}
