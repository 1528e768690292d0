// Package notification models the poll-on-load notification feed.
package notification

import "time"

// Notification as the backend returns it.
type Notification struct {
	ID         string    `json:"id"`
	UserID     int       `json:"userId"`
	DocumentID string    `json:"documentId,omitempty"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

// View is the render-ready shape: like document views it is total, a blank
// message surfaces as the N/A sentinel rather than an empty cell.
type View struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

const notAvailable = "N/A"

// Transform builds the view for a single notification.
func Transform(n Notification) View {
	v := View{
		ID:         n.ID,
		DocumentID: n.DocumentID,
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
	if v.Message == "" {
		v.Message = notAvailable
	}
	return v
}

// TransformAll maps Transform over the feed, preserving order.
func TransformAll(items []Notification) []View {
	views := make([]View, len(items))
	for i, n := range items {
		views[i] = Transform(n)
	}
	return views
}

// Unread returns the unread subset, order preserved.
func Unread(items []Notification) []Notification {
	unread := make([]Notification, 0, len(items))
	for _, n := range items {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread
}

// UnreadCount is the badge count, always recomputed from the full feed.
func UnreadCount(items []Notification) int {
	return len(Unread(items))
}
