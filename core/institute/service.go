package institute

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/digitalforgex/institute/core"
)

// Service wraps the record store with typed reads and the derived views.
// It holds no state of its own: every view is recomputed from a fresh
// snapshot of the collections it needs.
type Service struct {
	store core.Store
	log   core.Logger
	mail  core.EmailService
}

func NewService(store core.Store, logger core.Logger, mailSvc core.EmailService) *Service {
	return &Service{store: store, log: logger, mail: mailSvc}
}

func nowMillis() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// Typed collection readers. Each is the sole translator for its collection:
// a raw document never leaves this layer. Store failures are returned to
// CRUD callers; the aggregation views catch them per read instead (a failed
// section defaults to empty, siblings are unaffected).

func (svc *Service) loadStudents(ctx context.Context) ([]Student, error) {
	docs, err := svc.store.GetAll(ctx, ColStudents)
	if err != nil {
		return nil, errors.Wrap(err, "reading students")
	}
	students := make([]Student, 0, len(docs))
	for _, doc := range docs {
		students = append(students, StudentFromDocument(doc))
	}
	return students, nil
}

func (svc *Service) loadFees(ctx context.Context) ([]Fee, error) {
	return svc.normalizeFees(svc.store.GetAll(ctx, ColFees))
}

func (svc *Service) loadFeesByStudent(ctx context.Context, studentID string) ([]Fee, error) {
	return svc.normalizeFees(svc.store.GetByEquality(ctx, ColFees, "studentId", studentID))
}

func (svc *Service) normalizeFees(docs []core.Document, err error) ([]Fee, error) {
	if err != nil {
		return nil, errors.Wrap(err, "reading fees")
	}
	fees := make([]Fee, 0, len(docs))
	for _, doc := range docs {
		fee, err := FeeFromDocument(doc)
		if err != nil {
			// unattributable record; drop it, keep the rest
			svc.log.Warn("skipping malformed fee document", doc.ID)
			continue
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

func (svc *Service) loadAttendanceByClass(ctx context.Context, class string) ([]AttendanceRecord, error) {
	docs, err := svc.store.GetByEquality(ctx, ColAttendance, "class", class)
	if err != nil {
		return nil, errors.Wrap(err, "reading attendance")
	}
	records := make([]AttendanceRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, AttendanceFromDocument(doc))
	}
	return records, nil
}

func (svc *Service) loadExams(ctx context.Context) ([]Exam, error) {
	return svc.normalizeExams(svc.store.GetAll(ctx, ColExams))
}

func (svc *Service) loadExamsByCourse(ctx context.Context, course string) ([]Exam, error) {
	return svc.normalizeExams(svc.store.GetByEquality(ctx, ColExams, "course", course))
}

func (svc *Service) normalizeExams(docs []core.Document, err error) ([]Exam, error) {
	if err != nil {
		return nil, errors.Wrap(err, "reading exams")
	}
	exams := make([]Exam, 0, len(docs))
	for _, doc := range docs {
		exams = append(exams, ExamFromDocument(doc))
	}
	return exams, nil
}

func (svc *Service) loadMarks(ctx context.Context) ([]MarksRecord, error) {
	docs, err := svc.store.GetAll(ctx, ColMarks)
	if err != nil {
		return nil, errors.Wrap(err, "reading marks")
	}
	marks := make([]MarksRecord, 0, len(docs))
	for _, doc := range docs {
		marks = append(marks, MarksFromDocument(doc))
	}
	return marks, nil
}

func (svc *Service) loadNotices(ctx context.Context) ([]Notice, error) {
	docs, err := svc.store.GetAll(ctx, ColNotices)
	if err != nil {
		return nil, errors.Wrap(err, "reading notices")
	}
	notices := make([]Notice, 0, len(docs))
	for _, doc := range docs {
		notices = append(notices, NoticeFromDocument(doc))
	}
	return notices, nil
}

func (svc *Service) loadResources(ctx context.Context) ([]Resource, error) {
	docs, err := svc.store.GetAll(ctx, ColResources)
	if err != nil {
		return nil, errors.Wrap(err, "reading resources")
	}
	resources := make([]Resource, 0, len(docs))
	for _, doc := range docs {
		resources = append(resources, ResourceFromDocument(doc))
	}
	return resources, nil
}

func (svc *Service) loadStaff(ctx context.Context) ([]Staff, error) {
	docs, err := svc.store.GetAll(ctx, ColStaff)
	if err != nil {
		return nil, errors.Wrap(err, "reading staff")
	}
	staff := make([]Staff, 0, len(docs))
	for _, doc := range docs {
		staff = append(staff, StaffFromDocument(doc))
	}
	return staff, nil
}

func (svc *Service) loadInquiries(ctx context.Context) ([]Inquiry, error) {
	docs, err := svc.store.GetAll(ctx, ColInquiries)
	if err != nil {
		return nil, errors.Wrap(err, "reading inquiries")
	}
	inquiries := make([]Inquiry, 0, len(docs))
	for _, doc := range docs {
		inquiries = append(inquiries, InquiryFromDocument(doc))
	}
	return inquiries, nil
}

func (svc *Service) loadSessions(ctx context.Context) ([]ScheduleSession, error) {
	docs, err := svc.store.GetAll(ctx, ColSchedule)
	if err != nil {
		return nil, errors.Wrap(err, "reading schedule")
	}
	sessions := make([]ScheduleSession, 0, len(docs))
	for _, doc := range docs {
		sessions = append(sessions, SessionFromDocument(doc))
	}
	return sessions, nil
}
