package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

var ErrExamNotFound = errors.New("exam not found")

type (
	NewExam struct {
		Title    string `json:"title" validate:"required"`
		Course   string `json:"course" validate:"required"`
		Date     string `json:"date" validate:"required"`
		MaxMarks string `json:"maxMarks" validate:"required,numeric"`
	}

	// SaveMarks upserts the grade sheet of one exam. Scores are text; an
	// empty string leaves the student ungraded (excluded from results, not
	// zero).
	SaveMarks struct {
		Records map[string]string `json:"records" validate:"required"`
	}

	// GradeEntry is one student's row on the grading screen.
	GradeEntry struct {
		Student Student `json:"student"`
		Score   string  `json:"score"` // "" until graded
	}
)

func (ne NewExam) Validate() error {
	return core.Validate.Struct(ne)
}

func (sm SaveMarks) Validate() error {
	return core.Validate.Struct(sm)
}

func (svc *Service) CreateExam(ctx context.Context, ne NewExam) (Exam, error) {
	fields := map[string]interface{}{
		"title":     core.CleanString(ne.Title),
		"course":    core.CleanString(ne.Course),
		"date":      ne.Date,
		"maxMarks":  ne.MaxMarks,
		"timestamp": nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColExams, fields)
	if err != nil {
		return Exam{}, err
	}
	return ExamFromDocument(core.Document{ID: id, Fields: fields}), nil
}

// QueryExams returns all exams, newest first.
func (svc *Service) QueryExams(ctx context.Context) ([]Exam, error) {
	exams, err := svc.loadExams(ctx)
	if err != nil {
		return nil, err
	}
	sortExamsNewestFirst(exams)
	return exams, nil
}

// DeleteExam removes the exam and its marks record together; an orphaned
// grade sheet would otherwise keep matching joins forever.
func (svc *Service) DeleteExam(ctx context.Context, id string) error {
	if err := svc.store.Delete(ctx, ColExams, id); err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			return ErrExamNotFound
		}
		return err
	}
	if err := svc.store.Delete(ctx, ColMarks, id); err != nil && !errors.Is(err, core.ErrDocumentNotFound) {
		return err
	}
	return nil
}

// GradeSheet returns the exam's class roster (alphabetical) with any scores
// already entered, ready for the grading screen.
func (svc *Service) GradeSheet(ctx context.Context, examID string) (Exam, []GradeEntry, error) {
	doc, err := svc.store.GetByID(ctx, ColExams, examID)
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			return Exam{}, nil, ErrExamNotFound
		}
		return Exam{}, nil, err
	}
	exam := ExamFromDocument(doc)

	students, err := svc.loadStudents(ctx)
	if err != nil {
		return Exam{}, nil, err
	}
	roster := StudentsByClass(students, exam.Course)
	sortStudentsByName(roster)

	var scores map[string]string
	markDoc, err := svc.store.GetByID(ctx, ColMarks, examID)
	switch {
	case err == nil:
		scores = MarksFromDocument(markDoc).Records
	case errors.Is(err, core.ErrDocumentNotFound):
		// not graded yet
	default:
		return Exam{}, nil, err
	}

	entries := make([]GradeEntry, 0, len(roster))
	for _, student := range roster {
		entries = append(entries, GradeEntry{Student: student, Score: scores[student.ID]})
	}
	return exam, entries, nil
}

// SaveMarksFor upserts the marks record under the exam's own id, keeping
// the 1:1 pairing the joins rely on.
func (svc *Service) SaveMarksFor(ctx context.Context, examID string, sm SaveMarks) (MarksRecord, error) {
	doc, err := svc.store.GetByID(ctx, ColExams, examID)
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			return MarksRecord{}, ErrExamNotFound
		}
		return MarksRecord{}, err
	}
	exam := ExamFromDocument(doc)

	records := make(map[string]interface{}, len(sm.Records))
	for studentID, score := range sm.Records {
		records[studentID] = score
	}
	rec := MarksRecord{
		ID:          exam.ID,
		Course:      exam.Course,
		Records:     sm.Records,
		LastUpdated: nowMillis(),
	}
	err = svc.store.Set(ctx, ColMarks, exam.ID, map[string]interface{}{
		"course":      rec.Course,
		"records":     records,
		"lastUpdated": rec.LastUpdated,
	})
	if err != nil {
		return MarksRecord{}, err
	}
	return rec, nil
}
