package subscription

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/resellkit/pkg/email"
)

// CancellationNotifier is the notification sink fired from the cancel
// transition. A failed notification aborts the cancellation like any other
// hook.
type CancellationNotifier interface {
	SendCancellationNotice(ctx context.Context, sub *Subscription) error
}

// NopNotifier discards all notifications. Used as the default so a service
// without a configured mailer still cancels cleanly.
type NopNotifier struct{}

func (NopNotifier) SendCancellationNotice(ctx context.Context, sub *Subscription) error {
	return nil
}

// EmailCancellationNotifier sends an internal cancellation notification to
// the operator inbox.
type EmailCancellationNotifier struct {
	sender        email.EmailSender
	internalInbox string
}

func NewEmailCancellationNotifier(sender email.EmailSender, internalInbox string) *EmailCancellationNotifier {
	if sender == nil {
		panic("subscription: EmailSender is required")
	}
	return &EmailCancellationNotifier{
		sender:        sender,
		internalInbox: internalInbox,
	}
}

func (n *EmailCancellationNotifier) SendCancellationNotice(ctx context.Context, sub *Subscription) error {
	product := "unknown product"
	if sub.Product != nil {
		product = sub.Product.Name
	}

	return n.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:  n.internalInbox,
		Subject: fmt.Sprintf("Subscription cancelled: %s", product),
		BodyHTML: fmt.Sprintf(
			"<p>Subscription <strong>%s</strong> (%s, %s cycle) has been cancelled.</p>",
			sub.ID, product, sub.CycleType,
		),
		Tag: "subscription-cancellation",
	})
}
