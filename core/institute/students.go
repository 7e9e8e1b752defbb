package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

type NewStudent struct {
	Name    string `json:"name" validate:"required"`
	Class   string `json:"class" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

func (ns NewStudent) Validate() error {
	return core.Validate.Struct(ns)
}

func (svc *Service) CreateStudent(ctx context.Context, ns NewStudent) (Student, error) {
	student := Student{
		Name:      core.CleanString(ns.Name),
		Class:     core.CleanString(ns.Class),
		Email:     defaultIfEmpty(ns.Email, "N/A"),
		Phone:     core.CleanString(ns.Phone),
		Address:   defaultIfEmpty(ns.Address, "N/A"),
		JoinDate:  today(),
		Timestamp: nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColStudents, map[string]interface{}{
		"name":      student.Name,
		"class":     student.Class,
		"email":     student.Email,
		"phone":     student.Phone,
		"address":   student.Address,
		"joinDate":  student.JoinDate,
		"timestamp": student.Timestamp,
	})
	if err != nil {
		return Student{}, err
	}
	student.ID = id
	return student, nil
}

// QueryStudents returns the full roster, alphabetical by name.
func (svc *Service) QueryStudents(ctx context.Context) ([]Student, error) {
	students, err := svc.loadStudents(ctx)
	if err != nil {
		return nil, err
	}
	sortStudentsByName(students)
	return students, nil
}

// GetStudentByPhone is the student login lookup; the phone number is the
// portal credential.
func (svc *Service) GetStudentByPhone(ctx context.Context, phone string) (Student, error) {
	docs, err := svc.store.GetByEquality(ctx, ColStudents, "phone", core.CleanString(phone))
	if err != nil {
		return Student{}, err
	}
	if len(docs) == 0 {
		return Student{}, ErrStudentNotFound
	}
	return StudentFromDocument(docs[0]), nil
}

func (svc *Service) DeleteStudent(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColStudents, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrStudentNotFound
	}
	return err
}

func defaultIfEmpty(s, def string) string {
	if core.CleanString(s) == "" {
		return def
	}
	return core.CleanString(s)
}
