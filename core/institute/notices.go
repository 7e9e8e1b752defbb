package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

var ErrNoticeNotFound = errors.New("notice not found")

type NewNotice struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=General Urgent Holiday Exam"`
}

func (nn NewNotice) Validate() error {
	return core.Validate.Struct(nn)
}

func (svc *Service) CreateNotice(ctx context.Context, nn NewNotice) (Notice, error) {
	typ := nn.Type
	if typ == "" {
		typ = "General"
	}
	fields := map[string]interface{}{
		"title":     core.CleanString(nn.Title),
		"message":   core.CleanString(nn.Message),
		"type":      typ,
		"date":      today(),
		"timestamp": nowMillis(),
	}
	id, err := svc.store.Add(ctx, ColNotices, fields)
	if err != nil {
		return Notice{}, err
	}
	return NoticeFromDocument(core.Document{ID: id, Fields: fields}), nil
}

// QueryNotices returns the full board, newest first; the presentation layer
// does its own preview truncation.
func (svc *Service) QueryNotices(ctx context.Context) ([]Notice, error) {
	notices, err := svc.loadNotices(ctx)
	if err != nil {
		return nil, err
	}
	sortNoticesNewestFirst(notices)
	return notices, nil
}

func (svc *Service) DeleteNotice(ctx context.Context, id string) error {
	err := svc.store.Delete(ctx, ColNotices, id)
	if errors.Is(err, core.ErrDocumentNotFound) {
		return ErrNoticeNotFound
	}
	return err
}
