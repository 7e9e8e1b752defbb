package institute

import (
	"context"
	"testing"
	"time"
)

func TestCreateStudent(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	student, err := svc.CreateStudent(ctx, NewStudent{
		Name: " Amina K ", Class: "Math", Phone: "111",
	})
	if err != nil {
		t.Fatalf("CreateStudent(): %v", err)
	}
	if student.ID == "" {
		t.Error("student should get an id")
	}
	if student.Name != "Amina K" {
		t.Errorf("Name = %q; want trimmed", student.Name)
	}
	if student.Email != "N/A" || student.Address != "N/A" {
		t.Errorf("missing contact fields should default to N/A; got %q / %q", student.Email, student.Address)
	}
	if student.JoinDate != time.Now().Format("2006-01-02") {
		t.Errorf("JoinDate = %q; want today", student.JoinDate)
	}
	if student.Timestamp == 0 {
		t.Error("Timestamp should be stamped")
	}

	doc, err := store.GetByID(ctx, ColStudents, student.ID)
	if err != nil {
		t.Fatalf("GetByID(): %v", err)
	}
	if StudentFromDocument(doc) != student {
		t.Errorf("stored = %+v; want %+v", StudentFromDocument(doc), student)
	}
}

func TestQueryStudents(t *testing.T) {
	svc, store := setup(t)
	seedStudent(t, store, "Zed", "Math", "333")
	seedStudent(t, store, "Alice", "Math", "111")

	students, err := svc.QueryStudents(context.Background())
	if err != nil {
		t.Fatalf("QueryStudents(): %v", err)
	}
	if len(students) != 2 || students[0].Name != "Alice" || students[1].Name != "Zed" {
		t.Errorf("QueryStudents() = %+v; want alphabetical", students)
	}
}

func TestGetStudentByPhone(t *testing.T) {
	svc, store := setup(t)
	seedStudent(t, store, "Amina", "Math", "0812345678")

	student, err := svc.GetStudentByPhone(context.Background(), " 0812345678 ")
	if err != nil {
		t.Fatalf("GetStudentByPhone(): %v", err)
	}
	if student.Name != "Amina" {
		t.Errorf("student = %+v", student)
	}

	if _, err := svc.GetStudentByPhone(context.Background(), "0000"); err != ErrStudentNotFound {
		t.Errorf("err = %v; want ErrStudentNotFound", err)
	}
}

func TestDeleteStudent(t *testing.T) {
	svc, store := setup(t)
	id := seedStudent(t, store, "Amina", "Math", "111")

	if err := svc.DeleteStudent(context.Background(), id); err != nil {
		t.Fatalf("DeleteStudent(): %v", err)
	}
	if err := svc.DeleteStudent(context.Background(), id); err != ErrStudentNotFound {
		t.Errorf("err = %v; want ErrStudentNotFound", err)
	}
}
