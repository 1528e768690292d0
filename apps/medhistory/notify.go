package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/medhistory/medhistory/core"
	"github.com/medhistory/medhistory/core/notification"
)

func (cli *commandLine) notifications(args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	readID := fs.String("read", "", "Mark this notification as read instead of listing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ctx := context.Background()

	if *readID != "" {
		if err := cli.api.MarkNotificationRead(ctx, *readID); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "notification %s marked as read\n", *readID)
		return nil
	}

	items, err := cli.api.Notifications(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d unread\n", notification.UnreadCount(items))

	w := cli.newTabWriter()
	fmt.Fprintln(w, "ID\tMESSAGE\tREAD\tDATE")
	for _, view := range notification.TransformAll(items) {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n",
			view.ID, view.Message, view.Read, view.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (cli *commandLine) contact(args []string) error {
	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	name := fs.String("name", "", "Your name")
	email := fs.String("email", "", "Your email")
	subject := fs.String("subject", "", "Message subject")
	message := fs.String("message", "", "Message body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	msg := core.ContactMessage{
		Name:    *name,
		Email:   *email,
		Subject: *subject,
		Message: *message,
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	if err := cli.api.SendContactMail(context.Background(), msg); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "message sent")
	return nil
}
