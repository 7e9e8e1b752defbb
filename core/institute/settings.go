package institute

import (
	"context"
	"errors"

	"github.com/digitalforgex/institute/core"
)

type SaveSettings struct {
	InstituteName string `json:"instituteName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address"`
	AcademicYear  string `json:"academicYear"`
}

func (ss SaveSettings) Validate() error {
	return core.Validate.Struct(ss)
}

// GetSettings reads the singleton settings document; when none has been
// saved yet the documented defaults apply.
func (svc *Service) GetSettings(ctx context.Context) (Settings, error) {
	doc, err := svc.store.GetByID(ctx, ColSettings, SettingsDocID)
	if err != nil {
		if errors.Is(err, core.ErrDocumentNotFound) {
			return SettingsFromDocument(core.Document{ID: SettingsDocID}), nil
		}
		return Settings{}, err
	}
	return SettingsFromDocument(doc), nil
}

// UpdateSettings overwrites the singleton document, creating it on first save.
func (svc *Service) UpdateSettings(ctx context.Context, ss SaveSettings) (Settings, error) {
	fields := map[string]interface{}{
		"instituteName": core.CleanString(ss.InstituteName),
		"email":         core.CleanString(ss.Email),
		"phone":         core.CleanString(ss.Phone),
		"address":       defaultIfEmpty(ss.Address, "N/A"),
		"academicYear":  ss.AcademicYear,
	}
	if err := svc.store.Set(ctx, ColSettings, SettingsDocID, fields); err != nil {
		return Settings{}, err
	}
	return SettingsFromDocument(core.Document{ID: SettingsDocID, Fields: fields}), nil
}
