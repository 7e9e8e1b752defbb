package institute

import (
	"context"
	"testing"
)

func TestGetSettings_Defaults(t *testing.T) {
	svc, _ := setup(t)

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings(): %v", err)
	}
	if settings.InstituteName != "DigitalForgeX Institute" {
		t.Errorf("InstituteName = %q; want the default", settings.InstituteName)
	}
	if settings.Email != "N/A" || settings.Phone != "N/A" || settings.Address != "N/A" {
		t.Errorf("unset contact fields should default to N/A; got %+v", settings)
	}
}

func TestUpdateSettings(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	saved, err := svc.UpdateSettings(ctx, SaveSettings{
		InstituteName: "Sunrise Academy",
		Email:         "office@sunrise.test",
		Phone:         "0123",
		AcademicYear:  "2026-2027",
	})
	if err != nil {
		t.Fatalf("UpdateSettings(): %v", err)
	}
	if saved.Address != "N/A" {
		t.Errorf("Address = %q; want N/A default", saved.Address)
	}

	got, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings(): %v", err)
	}
	if got != saved {
		t.Errorf("GetSettings() = %+v; want %+v", got, saved)
	}

	// singleton: a second save overwrites the same document
	if _, err := svc.UpdateSettings(ctx, SaveSettings{
		InstituteName: "Sunrise Academy", Email: "office@sunrise.test", Phone: "0456",
	}); err != nil {
		t.Fatalf("UpdateSettings(): %v", err)
	}
	docs, _ := store.GetAll(ctx, ColSettings)
	if len(docs) != 1 || docs[0].ID != SettingsDocID {
		t.Errorf("settings docs = %+v; want the single %q document", docs, SettingsDocID)
	}
}
