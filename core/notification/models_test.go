package notification

import (
	"testing"
	"time"
)

func TestTransform(t *testing.T) {
	createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	n := Notification{ID: "n1", DocumentID: "d1", Message: "new grade", CreatedAt: createdAt}

	v := Transform(n)
	if v.ID != "n1" || v.DocumentID != "d1" || v.Message != "new grade" || v.Read || !v.CreatedAt.Equal(createdAt) {
		t.Errorf("Transform() = %+v", v)
	}

	if v := Transform(Notification{ID: "n2"}); v.Message != notAvailable {
		t.Errorf("blank message should default, got %q", v.Message)
	}
}

func TestUnread(t *testing.T) {
	items := []Notification{
		{ID: "a", Read: true},
		{ID: "b"},
		{ID: "c"},
		{ID: "d", Read: true},
	}
	unread := Unread(items)
	if len(unread) != 2 || unread[0].ID != "b" || unread[1].ID != "c" {
		t.Errorf("Unread() = %v, want [b c] in order", unread)
	}
	if got := UnreadCount(items); got != 2 {
		t.Errorf("UnreadCount() = %d, want 2", got)
	}
	if got := UnreadCount(nil); got != 0 {
		t.Errorf("UnreadCount(nil) = %d, want 0", got)
	}

	if views := TransformAll(items); len(views) != 4 || views[0].ID != "a" {
		t.Errorf("TransformAll() = %v", views)
	}
}
