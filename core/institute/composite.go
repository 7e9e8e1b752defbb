package institute

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/digitalforgex/institute/core"
)

// ErrStudentNotFound is the terminal "no such student" result, distinct
// from a student who exists but has no data yet.
var ErrStudentNotFound = errors.New("student not found")

type (
	AttendanceSummary struct {
		PresentDays int `json:"presentDays"`
		TotalDays   int `json:"totalDays"`
		Percentage  int `json:"percentage"`
	}

	// StudentComposite is the per-student portal view, assembled by joining
	// every collection that references the student by id or class label.
	StudentComposite struct {
		Student    Student           `json:"student"`
		Attendance AttendanceSummary `json:"attendance"`
		Schedule   []ScheduleSession `json:"schedule"`
		Fees       []Fee             `json:"fees"`
		Resources  []Resource        `json:"resources"`
		Results    []ExamResult      `json:"results"`
		Notices    []Notice          `json:"notices"`
	}
)

// StudentComposite resolves the student, then snapshots the six dependent
// collections concurrently and derives every section from those snapshots.
// The view is internally consistent (one snapshot per collection) though
// not globally consistent with writes happening elsewhere. A failed read
// logs and leaves its own section empty; nothing is rolled back.
func (svc *Service) StudentComposite(ctx context.Context, studentID string) (StudentComposite, error) {
	doc, err := svc.store.GetByID(ctx, ColStudents, studentID)
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			return StudentComposite{}, ErrStudentNotFound
		}
		return StudentComposite{}, err
	}
	student := StudentFromDocument(doc)

	var (
		attendance []AttendanceRecord
		sessions   []ScheduleSession
		fees       []Fee
		resources  []Resource
		exams      []Exam
		marks      []MarksRecord
		notices    []Notice
		wg         sync.WaitGroup
	)

	read := func(section string, load func() error) {
		defer wg.Done()
		if err := load(); err != nil {
			svc.log.Error("student composite: "+section+" read failed", err, studentID)
		}
	}

	wg.Add(7)
	go read("attendance", func() (err error) {
		attendance, err = svc.loadAttendanceByClass(ctx, student.Class)
		return
	})
	go read("schedule", func() (err error) {
		sessions, err = svc.loadSessions(ctx)
		return
	})
	go read("fees", func() (err error) {
		fees, err = svc.loadFeesByStudent(ctx, student.ID)
		return
	})
	go read("resources", func() (err error) {
		resources, err = svc.loadResources(ctx)
		return
	})
	go read("exams", func() (err error) {
		exams, err = svc.loadExamsByCourse(ctx, student.Class)
		return
	})
	go read("marks", func() (err error) {
		marks, err = svc.loadMarks(ctx)
		return
	})
	go read("notices", func() (err error) {
		notices, err = svc.loadNotices(ctx)
		return
	})
	wg.Wait()

	mySchedule := SessionsForClass(sessions, student.Class)
	sortSessionsByStartTime(mySchedule)

	myResources := ResourcesForClass(resources, student.Class)
	sortResourcesNewestFirst(myResources)

	myResults := ResultsForStudent(exams, marks, student.ID, student.Class)
	sortResultsNewestFirst(myResults)

	sortFeesNewestFirst(fees)
	sortNoticesNewestFirst(notices)

	return StudentComposite{
		Student:    student,
		Attendance: attendanceSummary(attendance, student.ID),
		Schedule:   mySchedule,
		Fees:       fees,
		Resources:  myResources,
		Results:    myResults,
		Notices:    notices,
	}, nil
}

// attendanceSummary scans the class's day records. A day whose roster does
// not mention the student at all (not yet enrolled, say) counts toward
// neither total nor present; no recorded days yields 0%, not a fault.
func attendanceSummary(records []AttendanceRecord, studentID string) AttendanceSummary {
	var summary AttendanceSummary
	for _, rec := range records {
		status, ok := rec.Records[studentID]
		if !ok {
			continue
		}
		summary.TotalDays++
		if status == StatusPresent {
			summary.PresentDays++
		}
	}
	if summary.TotalDays > 0 {
		summary.Percentage = int(math.Round(float64(summary.PresentDays) / float64(summary.TotalDays) * 100))
	}
	return summary
}
