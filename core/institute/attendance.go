package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

type (
	// RosterEntry is one student's row on the day sheet.
	RosterEntry struct {
		Student Student `json:"student"`
		Status  string  `json:"status"`
	}

	// AttendanceSheet is what the marking screen works from: the class
	// roster with each student's status for the day, defaulted to Present
	// where no record exists yet.
	AttendanceSheet struct {
		Date    string        `json:"date"`
		Class   string        `json:"class"`
		Entries []RosterEntry `json:"entries"`
		Saved   bool          `json:"saved"` // a record already exists for this day
	}

	SaveAttendance struct {
		Date    string            `json:"date" validate:"required"`
		Class   string            `json:"class" validate:"required"`
		Records map[string]string `json:"records" validate:"required,dive,oneof=Present Absent"`
	}
)

func (sa SaveAttendance) Validate() error {
	return core.Validate.Struct(sa)
}

// attendanceDocID builds the composite key that guarantees at most one
// record per class per day.
func attendanceDocID(date, class string) string {
	return date + "_" + class
}

// Sheet returns the marking sheet for one (date, class) pair: the class
// roster alphabetically, overlaid with the day's record if one was saved.
func (svc *Service) Sheet(ctx context.Context, date, class string) (AttendanceSheet, error) {
	students, err := svc.loadStudents(ctx)
	if err != nil {
		return AttendanceSheet{}, err
	}
	roster := StudentsByClass(students, class)
	sortStudentsByName(roster)

	sheet := AttendanceSheet{Date: date, Class: class, Entries: make([]RosterEntry, 0, len(roster))}

	var existing map[string]string
	doc, err := svc.store.GetByID(ctx, ColAttendance, attendanceDocID(date, class))
	switch {
	case err == nil:
		existing = AttendanceFromDocument(doc).Records
		sheet.Saved = true
	case errors.Is(err, core.ErrDocumentNotFound):
		// fresh sheet
	default:
		return AttendanceSheet{}, err
	}

	for _, student := range roster {
		status := StatusPresent
		if existing != nil {
			if s, ok := existing[student.ID]; ok {
				status = s
			}
		}
		sheet.Entries = append(sheet.Entries, RosterEntry{Student: student, Status: status})
	}
	return sheet, nil
}

// Save writes the day's record under its composite id; a second save for
// the same (date, class) overwrites, never duplicates.
func (svc *Service) Save(ctx context.Context, sa SaveAttendance) (AttendanceRecord, error) {
	records := make(map[string]interface{}, len(sa.Records))
	for studentID, status := range sa.Records {
		records[studentID] = status
	}
	rec := AttendanceRecord{
		ID:        attendanceDocID(sa.Date, sa.Class),
		Date:      sa.Date,
		Class:     sa.Class,
		Records:   sa.Records,
		Timestamp: nowMillis(),
	}
	err := svc.store.Set(ctx, ColAttendance, rec.ID, map[string]interface{}{
		"date":      rec.Date,
		"class":     rec.Class,
		"records":   records,
		"timestamp": rec.Timestamp,
	})
	if err != nil {
		return AttendanceRecord{}, err
	}
	return rec, nil
}
