package institute

import (
	"context"
	"testing"
)

func TestCreateStaff(t *testing.T) {
	svc, _ := setup(t)

	member, err := svc.CreateStaff(context.Background(), NewStaff{
		Name: "Mr Okoro", Role: "Teacher", Phone: "555",
	})
	if err != nil {
		t.Fatalf("CreateStaff(): %v", err)
	}
	if member.Email != "N/A" {
		t.Errorf("Email = %q; want N/A default", member.Email)
	}
	if member.JoinDate == "" {
		t.Error("JoinDate should be stamped")
	}
}

func TestQueryStaff(t *testing.T) {
	svc, store := setup(t)
	addDoc(t, store, ColStaff, map[string]interface{}{"name": "Zara"})
	addDoc(t, store, ColStaff, map[string]interface{}{"name": "Abel"})

	staff, err := svc.QueryStaff(context.Background())
	if err != nil {
		t.Fatalf("QueryStaff(): %v", err)
	}
	if len(staff) != 2 || staff[0].Name != "Abel" || staff[1].Name != "Zara" {
		t.Errorf("QueryStaff() = %+v; want alphabetical", staff)
	}
}

func TestDeleteStaff(t *testing.T) {
	svc, store := setup(t)
	id := addDoc(t, store, ColStaff, map[string]interface{}{"name": "Mr Okoro"})

	if err := svc.DeleteStaff(context.Background(), id); err != nil {
		t.Fatalf("DeleteStaff(): %v", err)
	}
	if err := svc.DeleteStaff(context.Background(), id); err != ErrStaffNotFound {
		t.Errorf("err = %v; want ErrStaffNotFound", err)
	}
}
