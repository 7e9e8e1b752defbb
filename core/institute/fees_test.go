package institute

import (
	"context"
	"testing"

	"github.com/digitalforgex/institute/core"
)

func TestCreateFee(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	stuID := seedStudent(t, store, "Amina", "Math", "111")

	fee, err := svc.CreateFee(ctx, NewFee{StudentID: stuID, Amount: "1500.50", Date: "2026-02-01"})
	if err != nil {
		t.Fatalf("CreateFee(): %v", err)
	}
	if fee.StudentName != "Amina" || fee.Course != "Math" {
		t.Errorf("fee = %+v; want the student's name and course denormalized", fee)
	}
	if fee.Amount != 1500.5 {
		t.Errorf("Amount = %v; want 1500.5", fee.Amount)
	}
	if fee.Status != FeePending {
		t.Errorf("Status = %q; want default %q", fee.Status, FeePending)
	}

	if _, err := svc.CreateFee(ctx, NewFee{StudentID: "nope", Amount: "100", Date: "2026-02-01"}); err != ErrStudentNotFound {
		t.Errorf("err = %v; want ErrStudentNotFound", err)
	}
}

func TestQueryFees(t *testing.T) {
	svc, store := setup(t)
	addDoc(t, store, ColFees, map[string]interface{}{"studentId": "s1", "amount": 100, "timestamp": int64(1)})
	addDoc(t, store, ColFees, map[string]interface{}{"studentId": "s1", "amount": 200, "timestamp": int64(2)})
	addDoc(t, store, ColFees, map[string]interface{}{"amount": 999}) // no studentId, dropped

	fees, err := svc.QueryFees(context.Background())
	if err != nil {
		t.Fatalf("QueryFees(): %v", err)
	}
	if len(fees) != 2 || fees[0].Amount != 200 || fees[1].Amount != 100 {
		t.Errorf("QueryFees() = %+v; want attributable fees, newest first", fees)
	}
}

func TestSetFeeStatus(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	id := addDoc(t, store, ColFees, map[string]interface{}{"studentId": "s1", "status": FeePending})

	if err := svc.SetFeeStatus(ctx, id, FeePaid); err != nil {
		t.Fatalf("SetFeeStatus(): %v", err)
	}
	doc, _ := store.GetByID(ctx, ColFees, id)
	if fee, _ := FeeFromDocument(doc); fee.Status != FeePaid {
		t.Errorf("Status = %q; want %q", fee.Status, FeePaid)
	}

	err := svc.SetFeeStatus(ctx, id, "Waived")
	if _, ok := err.(*core.ValidationError); !ok {
		t.Errorf("err = %v; want a validation error", err)
	}

	if err := svc.SetFeeStatus(ctx, "nope", FeePaid); err != ErrFeeNotFound {
		t.Errorf("err = %v; want ErrFeeNotFound", err)
	}
}

func TestDeleteFee(t *testing.T) {
	svc, store := setup(t)
	id := addDoc(t, store, ColFees, map[string]interface{}{"studentId": "s1"})

	if err := svc.DeleteFee(context.Background(), id); err != nil {
		t.Fatalf("DeleteFee(): %v", err)
	}
	if err := svc.DeleteFee(context.Background(), id); err != ErrFeeNotFound {
		t.Errorf("err = %v; want ErrFeeNotFound", err)
	}
}
