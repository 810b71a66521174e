package interaction

import (
	"context"
	"fmt"
	"sync"

	"ktap/pkg/api"
	"ktap/pkg/content"
)

type ThumbAPI interface {
	Thumb(ctx context.Context, e api.Endpoint, id string, d content.Reaction) (*content.Thumbs, error)
}

// Reaction is the thumb up/down pair of one item.
type Reaction struct {
	item     *content.Item
	endpoint api.Endpoint
	api      ThumbAPI
	guard    *Guard

	mu       sync.Mutex
	inFlight map[content.Reaction]bool
}

func NewReaction(item *content.Item, endpoint api.Endpoint, thumbs ThumbAPI, guard *Guard) *Reaction {
	return &Reaction{
		item:     item,
		endpoint: endpoint,
		api:      thumbs,
		guard:    guard,
		inFlight: make(map[content.Reaction]bool, 2),
	}
}

func (r *Reaction) Active(d content.Reaction) bool {
	return d != content.None && r.item.Direction() == d
}

func (r *Reaction) InFlight(d content.Reaction) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inFlight[d]
}

func (r *Reaction) Counts() content.Thumbs {
	m := r.item.Counts()
	return content.Thumbs{Ups: m.Ups, Downs: m.Downs}
}

func (r *Reaction) Thumb(ctx context.Context, d content.Reaction) error {
	if d != content.Up && d != content.Down {
		return fmt.Errorf("invalid direction %v", d)
	}
	if _, err := r.guard.requireUser(); err != nil {
		return err
	}

	if !r.begin(d) {
		return ErrInFlight
	}
	defer r.end(d)

	thumbs, err := r.api.Thumb(ctx, r.endpoint, r.item.ID, d)
	if err != nil {
		return r.guard.fail(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.item.ApplyThumbs(thumbs, d)
	return nil
}

func (r *Reaction) begin(d content.Reaction) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight[d] {
		return false
	}
	r.inFlight[d] = true
	return true
}

func (r *Reaction) end(d content.Reaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight[d] = false
}
