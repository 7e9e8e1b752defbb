package institute

import (
	"context"
	"errors"
	"testing"

	"github.com/digitalforgex/institute/core"
)

var errStoreUnavailable = errors.New("store unavailable")

// flakyStore delegates to a real store but fails every read touching one
// collection, so the per-read isolation of the derived views can be
// exercised.
type flakyStore struct {
	core.Store
	failing string
}

func (s *flakyStore) GetAll(ctx context.Context, collection string) ([]core.Document, error) {
	if collection == s.failing {
		return nil, errStoreUnavailable
	}
	return s.Store.GetAll(ctx, collection)
}

func (s *flakyStore) GetByEquality(ctx context.Context, collection, field string, value interface{}) ([]core.Document, error) {
	if collection == s.failing {
		return nil, errStoreUnavailable
	}
	return s.Store.GetByEquality(ctx, collection, field, value)
}

// flakySvc returns a second service over the same data as svc, with reads
// of the given collection failing.
func flakySvc(svc *Service, failing string) *Service {
	return NewService(&flakyStore{Store: svc.store, failing: failing}, svc.log, svc.mail)
}

func TestDashboardSummary_FailedReadLeavesSectionEmpty(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	seedStudent(t, store, "Amina", "Math", "111")
	seedStudent(t, store, "Bob", "Science", "222")
	addDoc(t, store, ColFees, map[string]interface{}{
		"studentId": "x", "amount": 1000, "status": FeePaid, "timestamp": int64(10),
	})
	addDoc(t, store, ColInquiries, map[string]interface{}{
		"name": "Carol", "status": InquiryNew, "timestamp": int64(1),
	})

	got := flakySvc(svc, ColFees).DashboardSummary(ctx)
	if got.RevenueCollected != 0 || got.PendingFees != 0 || len(got.RecentIncome) != 0 {
		t.Errorf("fee sections should be empty when the fees read fails; got %+v", got)
	}
	if got.TotalStudents != 2 || len(got.CourseDistribution) != 2 || got.ActiveLeads != 1 {
		t.Errorf("sibling sections should be unaffected; got %+v", got)
	}

	got = flakySvc(svc, ColStudents).DashboardSummary(ctx)
	if got.TotalStudents != 0 || len(got.CourseDistribution) != 0 {
		t.Errorf("student sections should be empty when the students read fails; got %+v", got)
	}
	if got.RevenueCollected != 1000 || got.ActiveLeads != 1 {
		t.Errorf("sibling sections should be unaffected; got %+v", got)
	}
}

func TestStudentComposite_FailedReadLeavesSectionEmpty(t *testing.T) {
	svc, store := setup(t)
	ctx := context.Background()

	stuID := seedStudent(t, store, "Amina", "Math", "111")
	setDoc(t, store, ColAttendance, "2026-03-02_Math", map[string]interface{}{
		"date": "2026-03-02", "class": "Math",
		"records": map[string]interface{}{stuID: StatusPresent},
	})
	addDoc(t, store, ColFees, map[string]interface{}{
		"studentId": stuID, "amount": 500, "status": FeePending, "timestamp": int64(10),
	})
	addDoc(t, store, ColNotices, map[string]interface{}{
		"title": "Holiday", "content": "Closed Friday", "timestamp": int64(1),
	})

	got, err := flakySvc(svc, ColFees).StudentComposite(ctx, stuID)
	if err != nil {
		t.Fatalf("StudentComposite() failed: %v", err)
	}
	if len(got.Fees) != 0 {
		t.Errorf("fees section should be empty when the fees read fails; got %+v", got.Fees)
	}
	if got.Student.ID != stuID || got.Attendance.Percentage != 100 || len(got.Notices) != 1 {
		t.Errorf("sibling sections should be unaffected; got %+v", got)
	}
}
