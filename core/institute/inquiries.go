package institute

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/digitalforgex/institute/core"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type NewInquiry struct {
	StudentName string `json:"studentName" validate:"required"`
	ParentName  string `json:"parentName"`
	Phone       string `json:"phone" validate:"required"`
	Course      string `json:"course" validate:"required"`
}

func (ni NewInquiry) Validate() error {
	return core.Validate.Struct(ni)
}

// CreateInquiry records a new lead and mails the office inbox so the
// follow-up call is not missed.
func (svc *Service) CreateInquiry(ctx context.Context, ni NewInquiry) (Inquiry, error) {
	fields := map[string]interface{}{
		"studentName": core.CleanString(ni.StudentName),
		"parentName":  core.CleanString(ni.ParentName),
		"phone":       core.CleanString(ni.Phone),
		"course":      core.CleanString(ni.Course),
		"status":      InquiryNew,
		"date":        today(),
		"timestamp":   nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColInquiries, fields)
	if err != nil {
		return Inquiry{}, err
	}
	inquiry := InquiryFromDocument(core.Document{ID: id, Fields: fields})

	svc.mail.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: core.Conf.GetString("instituteEmail")}},
		Subject: "New admission inquiry: " + inquiry.StudentName,
		Body: fmt.Sprintf("%s (parent: %s) asked about %s.\nPhone: %s",
			inquiry.StudentName, inquiry.ParentName, inquiry.Course, inquiry.Phone),
	})
	return inquiry, nil
}

// QueryInquiries returns all leads, newest first.
func (svc *Service) QueryInquiries(ctx context.Context) ([]Inquiry, error) {
	inquiries, err := svc.loadInquiries(ctx)
	if err != nil {
		return nil, err
	}
	sortInquiriesNewestFirst(inquiries)
	return inquiries, nil
}

// SetInquiryStatus moves a lead along the pipeline.
func (svc *Service) SetInquiryStatus(ctx context.Context, id, status string) error {
	switch status {
	case InquiryNew, InquiryContacted, InquiryEnrolled, InquiryClosed:
	default:
		return core.NewValidationError(nil, core.FieldError{Field: "status", Error: "unknown inquiry status"})
	}
	err := svc.store.Update(ctx, ColInquiries, id, map[string]interface{}{"status": status})
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrInquiryNotFound
	}
	return err
}

func (svc *Service) DeleteInquiry(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColInquiries, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrInquiryNotFound
	}
	return err
}
