package subscription

import (
	"context"
	"log/slog"
)

// ServiceOption configures the lifecycle service during construction.
type ServiceOption func(*Service)

// CreateHook runs after a contact-owned subscription is created. Contact
// management lives outside this package; the hook is where the caller
// promotes the contact's status to reflect the new subscription. An error
// rolls the creation back.
type CreateHook func(ctx context.Context, sub *Subscription) error

// WithCreateHook sets the hook fired from Create for contact subscribers.
func WithCreateHook(hook CreateHook) ServiceOption {
	return func(s *Service) {
		s.onCreate = hook
	}
}

// WithLine registers a product-line strategy. Subscriptions on an
// unregistered line fall back to the generic behavior.
func WithLine(line Line) ServiceOption {
	return func(s *Service) {
		if line == nil {
			panic("subscription: Line cannot be nil")
		}
		s.lines[line.Name()] = line
	}
}

// WithNotifier sets the cancellation notifier. Defaults to NopNotifier.
func WithNotifier(notifier CancellationNotifier) ServiceOption {
	return func(s *Service) {
		if notifier == nil {
			panic("subscription: CancellationNotifier cannot be nil")
		}
		s.notifier = notifier
	}
}

// WithSubmissionClient sets the client used to submit campaigns to the
// external approval workflow. Without one, SubmitForApproval fails with
// ErrSubmissionFailed.
func WithSubmissionClient(client SubmissionClient) ServiceOption {
	return func(s *Service) {
		s.submitter = client
	}
}

// WithInvoiceChecker wires the invoice presence check guarding destruction.
// Without one, the invoice guard is skipped.
func WithInvoiceChecker(check InvoiceChecker) ServiceOption {
	return func(s *Service) {
		s.invoices = check
	}
}

// WithLogger sets the structured logger. Defaults to a discard logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log == nil {
			panic("subscription: logger cannot be nil")
		}
		s.log = log
	}
}
