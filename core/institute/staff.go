package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

var ErrStaffNotFound = errors.New("staff member not found")

type NewStaff struct {
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
}

func (ns NewStaff) Validate() error {
	return core.Validate.Struct(ns)
}

func (svc *Service) CreateStaff(ctx context.Context, ns NewStaff) (Staff, error) {
	fields := map[string]interface{}{
		"name":       core.CleanString(ns.Name),
		"role":       core.CleanString(ns.Role),
		"department": ns.Department,
		"phone":      core.CleanString(ns.Phone),
		"email":      defaultIfEmpty(ns.Email, "N/A"),
		"joinDate":   today(),
		"timestamp":  nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColStaff, fields)
	if err != nil {
		return Staff{}, err
	}
	return StaffFromDocument(core.Document{ID: id, Fields: fields}), nil
}

// QueryStaff returns the directory, alphabetical by name.
func (svc *Service) QueryStaff(ctx context.Context) ([]Staff, error) {
	staff, err := svc.loadStaff(ctx)
	if err != nil {
		return nil, err
	}
	sortStaffByName(staff)
	return staff, nil
}

func (svc *Service) DeleteStaff(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColStaff, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrStaffNotFound
	}
	return err
}
