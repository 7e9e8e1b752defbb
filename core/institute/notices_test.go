package institute

import (
	"context"
	"testing"
)

func TestCreateNotice(t *testing.T) {
	svc, _ := setup(t)

	notice, err := svc.CreateNotice(context.Background(), NewNotice{Title: "Holiday", Message: "Closed Friday"})
	if err != nil {
		t.Fatalf("CreateNotice(): %v", err)
	}
	if notice.Type != "General" {
		t.Errorf("Type = %q; want default General", notice.Type)
	}
	if notice.Date == "" || notice.Timestamp == 0 {
		t.Errorf("notice should be dated and stamped; got %+v", notice)
	}
}

func TestQueryNotices(t *testing.T) {
	svc, store := setup(t)
	addDoc(t, store, ColNotices, map[string]interface{}{"title": "Old", "timestamp": int64(1)})
	addDoc(t, store, ColNotices, map[string]interface{}{"title": "New", "timestamp": int64(2)})

	notices, err := svc.QueryNotices(context.Background())
	if err != nil {
		t.Fatalf("QueryNotices(): %v", err)
	}
	if len(notices) != 2 || notices[0].Title != "New" {
		t.Errorf("QueryNotices() = %+v; want newest first", notices)
	}
}

func TestDeleteNotice(t *testing.T) {
	svc, store := setup(t)
	id := addDoc(t, store, ColNotices, map[string]interface{}{"title": "x"})

	if err := svc.DeleteNotice(context.Background(), id); err != nil {
		t.Fatalf("DeleteNotice(): %v", err)
	}
	if err := svc.DeleteNotice(context.Background(), id); err != ErrNoticeNotFound {
		t.Errorf("err = %v; want ErrNoticeNotFound", err)
	}
}
