package apisvc

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core"
	"github.com/medhistory/medhistory/core/notification"
)

// Notifications fetches the caller's feed. The app polls this on load;
// there is no push channel.
func (c *Client) Notifications(ctx context.Context) ([]notification.Notification, error) {
	var items []notification.Notification
	err := c.get(ctx, "/notifications", &items)
	return items, errors.Wrap(err, "listing notifications")
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return errors.Wrap(c.put(ctx, "/notifications/"+id, nil, nil), "marking notification read")
}

// SendContactMail relays a contact-form message through the backend.
// Unauthenticated: the public contact page uses it too.
func (c *Client) SendContactMail(ctx context.Context, msg core.ContactMessage) error {
	err := c.request(ctx, http.MethodPost, "/email", msg, nil, false)
	return errors.Wrap(err, "sending contact mail")
}
