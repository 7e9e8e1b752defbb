package institute

import (
	"context"
	"errors"
	"testing"

	"github.com/digitalforgex/institute/core"
)

func TestCreateExam(t *testing.T) {
	svc, _ := setup(t)

	exam, err := svc.CreateExam(context.Background(), NewExam{
		Title: "  Midterm ", Course: "Math", Date: "2026-04-10", MaxMarks: "100",
	})
	if err != nil {
		t.Fatalf("CreateExam(): %v", err)
	}
	if exam.ID == "" {
		t.Error("exam should get an id")
	}
	if exam.Title != "Midterm" {
		t.Errorf("Title = %q; want trimmed", exam.Title)
	}
	if exam.MaxMarks != 100 {
		t.Errorf("MaxMarks = %v; want 100", exam.MaxMarks)
	}
}

func TestQueryExams(t *testing.T) {
	svc, store := setup(t)
	addDoc(t, store, ColExams, map[string]interface{}{"title": "Old", "timestamp": int64(1)})
	addDoc(t, store, ColExams, map[string]interface{}{"title": "New", "timestamp": int64(2)})

	exams, err := svc.QueryExams(context.Background())
	if err != nil {
		t.Fatalf("QueryExams(): %v", err)
	}
	if len(exams) != 2 || exams[0].Title != "New" {
		t.Errorf("QueryExams() = %+v; want newest first", exams)
	}
}

func TestSaveMarksFor(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	examID := addDoc(t, store, ColExams, map[string]interface{}{
		"title": "Midterm", "course": "Math", "maxMarks": 100,
	})

	rec, err := svc.SaveMarksFor(ctx, examID, SaveMarks{Records: map[string]string{"s1": "80", "s2": ""}})
	if err != nil {
		t.Fatalf("SaveMarksFor(): %v", err)
	}
	if rec.ID != examID {
		t.Errorf("marks id = %q; want the exam id %q", rec.ID, examID)
	}
	if rec.Course != "Math" {
		t.Errorf("Course = %q; want copied from the exam", rec.Course)
	}
	if rec.LastUpdated == 0 {
		t.Error("LastUpdated should be stamped")
	}

	doc, err := store.GetByID(ctx, ColMarks, examID)
	if err != nil {
		t.Fatalf("GetByID(marks): %v", err)
	}
	saved := MarksFromDocument(doc)
	if saved.Records["s1"] != "80" || saved.Records["s2"] != "" {
		t.Errorf("Records = %v", saved.Records)
	}

	// re-grade: overwrite, one record per exam
	if _, err := svc.SaveMarksFor(ctx, examID, SaveMarks{Records: map[string]string{"s1": "85"}}); err != nil {
		t.Fatalf("SaveMarksFor(): %v", err)
	}
	docs, _ := store.GetAll(ctx, ColMarks)
	if len(docs) != 1 {
		t.Errorf("marks records = %d; want 1", len(docs))
	}

	if _, err := svc.SaveMarksFor(ctx, "nope", SaveMarks{Records: map[string]string{}}); err != ErrExamNotFound {
		t.Errorf("err = %v; want ErrExamNotFound", err)
	}
}

func TestGradeSheet(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	aliceID := seedStudent(t, store, "Alice", "Math", "111")
	seedStudent(t, store, "Bob", "Math", "222")
	seedStudent(t, store, "Zed", "Science", "333")
	examID := addDoc(t, store, ColExams, map[string]interface{}{
		"title": "Midterm", "course": "Math", "maxMarks": 100,
	})
	setDoc(t, store, ColMarks, examID, map[string]interface{}{
		"course": "Math", "records": map[string]interface{}{aliceID: "80"},
	})

	exam, entries, err := svc.GradeSheet(ctx, examID)
	if err != nil {
		t.Fatalf("GradeSheet(): %v", err)
	}
	if exam.ID != examID {
		t.Errorf("exam = %+v", exam)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v; want the Math roster", entries)
	}
	if entries[0].Student.Name != "Alice" || entries[0].Score != "80" {
		t.Errorf("entries[0] = %+v; want Alice graded 80", entries[0])
	}
	if entries[1].Student.Name != "Bob" || entries[1].Score != "" {
		t.Errorf("entries[1] = %+v; want Bob ungraded", entries[1])
	}

	if _, _, err := svc.GradeSheet(ctx, "nope"); err != ErrExamNotFound {
		t.Errorf("err = %v; want ErrExamNotFound", err)
	}
}

func TestDeleteExam_CascadesMarks(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	examID := addDoc(t, store, ColExams, map[string]interface{}{"title": "Midterm", "course": "Math"})
	setDoc(t, store, ColMarks, examID, map[string]interface{}{"course": "Math"})

	if err := svc.DeleteExam(ctx, examID); err != nil {
		t.Fatalf("DeleteExam(): %v", err)
	}
	if _, err := store.GetByID(ctx, ColExams, examID); !errors.Is(err, core.ErrDocumentNotFound) {
		t.Errorf("exam still present: %v", err)
	}
	if _, err := store.GetByID(ctx, ColMarks, examID); !errors.Is(err, core.ErrDocumentNotFound) {
		t.Errorf("marks record should be cascade deleted: %v", err)
	}
}

func TestDeleteExam_NoMarksRecord(t *testing.T) {
	svc, store := setup(t)
	examID := addDoc(t, store, ColExams, map[string]interface{}{"title": "Quiz"})

	if err := svc.DeleteExam(context.Background(), examID); err != nil {
		t.Errorf("an ungraded exam should delete cleanly: %v", err)
	}
	if err := svc.DeleteExam(context.Background(), "nope"); err != ErrExamNotFound {
		t.Errorf("err = %v; want ErrExamNotFound", err)
	}
}
