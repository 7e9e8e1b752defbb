package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

var ErrFeeNotFound = errors.New("fee not found")

// NewFee generates one invoice. Amount stays text on the wire; the store is
// loosely typed and the normalizer owns the coercion.
type NewFee struct {
	StudentID string `json:"studentId" validate:"required"`
	Amount    string `json:"amount" validate:"required,numeric"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=Pending Paid"`
}

func (nf NewFee) Validate() error {
	return core.Validate.Struct(nf)
}

// CreateFee denormalizes the student's name and course onto the invoice,
// the way every fee document in the store already carries them.
func (svc *Service) CreateFee(ctx context.Context, nf NewFee) (Fee, error) {
	doc, err := svc.store.GetByID(ctx, ColStudents, nf.StudentID)
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			return Fee{}, ErrStudentNotFound
		}
		return Fee{}, err
	}
	student := StudentFromDocument(doc)

	status := nf.Status
	if status == "" {
		status = FeePending
	}
	fields := map[string]interface{}{
		"studentId":   student.ID,
		"studentName": student.Name,
		"course":      student.Class,
		"amount":      nf.Amount,
		"date":        nf.Date,
		"status":      status,
		"timestamp":   nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColFees, fields)
	if err != nil {
		return Fee{}, err
	}
	fee, _ := FeeFromDocument(core.Document{ID: id, Fields: fields})
	return fee, nil
}

// QueryFees returns every invoice, newest first.
func (svc *Service) QueryFees(ctx context.Context) ([]Fee, error) {
	fees, err := svc.loadFees(ctx)
	if err != nil {
		return nil, err
	}
	sortFeesNewestFirst(fees)
	return fees, nil
}

// SetFeeStatus flips an invoice between Pending and Paid.
func (svc *Service) SetFeeStatus(ctx context.Context, id, status string) error {
	if status != FeePending && status != FeePaid {
		return core.NewValidationError(nil, core.FieldError{Field: "status", Error: "must be Pending or Paid"})
	}
	err := svc.store.Update(ctx, ColFees, id, map[string]interface{}{"status": status})
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrFeeNotFound
	}
	return err
}

func (svc *Service) DeleteFee(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColFees, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrFeeNotFound
	}
	return err
}
