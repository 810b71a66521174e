package interaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"ktap/pkg/api"
	"ktap/pkg/content"
)

const ReportMaxLength = 200

var ErrReportUnavailable = errors.New("report is not available for this item")

type ReportAPI interface {
	Report(ctx context.Context, e api.Endpoint, id, reason string) error
}

// Report is a one-shot action: once the server accepts it the control stays
// locked for the item.
type Report struct {
	item     *content.Item
	endpoint api.Endpoint
	api      ReportAPI
	guard    *Guard

	mu         sync.Mutex
	locked     bool
	submitting bool
	message    string
}

func NewReport(item *content.Item, endpoint api.Endpoint, reports ReportAPI, guard *Guard) *Report {
	return &Report{item: item, endpoint: endpoint, api: reports, guard: guard}
}

func (r *Report) Visible() bool {
	u := r.guard.Session.User()
	if u == nil || r.item.Reported() || r.item.AuthorID() == u.ID {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.locked
}

// Message is the last validation message to show in the report form.
func (r *Report) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

func (r *Report) Submit(ctx context.Context, reason string) error {
	if _, err := r.guard.requireUser(); err != nil {
		return err
	}
	if !r.Visible() {
		return ErrReportUnavailable
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return r.invalid("reason cannot be blank")
	}
	if utf8.RuneCountInString(reason) > ReportMaxLength {
		return r.invalid(fmt.Sprintf("reason must be at most %d characters long", ReportMaxLength))
	}

	r.mu.Lock()
	if r.submitting {
		r.mu.Unlock()
		return ErrInFlight
	}
	r.submitting = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.submitting = false
		r.mu.Unlock()
	}()

	err := r.api.Report(ctx, r.endpoint, r.item.ID, reason)
	if err != nil {
		var verr *api.ValidationError
		if errors.As(err, &verr) && ctx.Err() == nil {
			return r.invalid(verr.Message)
		}
		return r.guard.fail(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.locked = true
	r.message = ""
	r.mu.Unlock()
	r.item.MarkReported()
	return nil
}

func (r *Report) invalid(msg string) error {
	r.mu.Lock()
	r.message = msg
	r.mu.Unlock()
	return &api.ValidationError{Message: msg}
}
