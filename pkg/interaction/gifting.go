package interaction

import (
	"context"
	"errors"
	"sync"

	"ktap/pkg/api"
	"ktap/pkg/content"
	"ktap/pkg/identity"
)

const IrreversibleWarning = "this action takes effect immediately and cannot be undone"

var (
	ErrInvalidTransition = errors.New("invalid gift dialog transition")
	ErrNoGiftSelected    = errors.New("no gift selected")
	ErrNotAffordable     = errors.New("balance is too low for this gift")
	ErrUnknownGift       = errors.New("gift is not in the catalog")
)

type GiftState int

const (
	Idle GiftState = iota
	CatalogOpen
	ConfirmOpen
	Sending
)

func (s GiftState) String() string {
	switch s {
	case CatalogOpen:
		return "catalog"
	case ConfirmOpen:
		return "confirm"
	case Sending:
		return "sending"
	default:
		return "idle"
	}
}

type GiftAPI interface {
	Gifts(ctx context.Context) ([]*content.Gift, error)
	SendGift(ctx context.Context, e api.Endpoint, id string, giftID int64) (*content.GiftSent, error)
}

// Gifting drives the catalog -> confirm -> send dialog for one item.
type Gifting struct {
	item     *content.Item
	endpoint api.Endpoint
	api      GiftAPI
	guard    *Guard

	mu       sync.Mutex
	state    GiftState
	catalog  []*content.Gift
	selected *content.Gift
}

func NewGifting(item *content.Item, endpoint api.Endpoint, gifts GiftAPI, guard *Guard) *Gifting {
	return &Gifting{item: item, endpoint: endpoint, api: gifts, guard: guard}
}

func (g *Gifting) State() GiftState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gifting) Catalog() []*content.Gift {
	g.mu.Lock()
	defer g.mu.Unlock()
	res := make([]*content.Gift, len(g.catalog))
	copy(res, g.catalog)
	return res
}

func (g *Gifting) Selected() *content.Gift {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.selected
}

func (g *Gifting) Warning() string {
	return IrreversibleWarning
}

// Open loads a fresh catalog and shows it.
func (g *Gifting) Open(ctx context.Context) error {
	if _, err := g.guard.requireUser(); err != nil {
		return err
	}

	g.mu.Lock()
	if g.state != Idle && g.state != CatalogOpen {
		g.mu.Unlock()
		return ErrInvalidTransition
	}
	g.mu.Unlock()

	catalog, err := g.api.Gifts(ctx)
	if err != nil {
		return g.guard.fail(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.catalog = catalog
	g.selected = nil
	g.state = CatalogOpen
	return nil
}

// Select picks a gift; picking the selected one again clears the selection.
func (g *Gifting) Select(giftID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != CatalogOpen {
		return ErrInvalidTransition
	}
	if g.selected != nil && g.selected.ID == giftID {
		g.selected = nil
		return nil
	}
	for _, gift := range g.catalog {
		if gift.ID == giftID {
			g.selected = gift
			return nil
		}
	}
	return ErrUnknownGift
}

func (g *Gifting) CanContinue() bool {
	return g.checkContinue() == nil
}

func (g *Gifting) Continue() error {
	if _, err := g.guard.requireUser(); err != nil {
		return err
	}
	if err := g.checkContinue(); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != CatalogOpen {
		return ErrInvalidTransition
	}
	g.state = ConfirmOpen
	return nil
}

func (g *Gifting) Back() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != ConfirmOpen {
		return ErrInvalidTransition
	}
	g.state = CatalogOpen
	return nil
}

func (g *Gifting) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == Sending {
		return ErrInvalidTransition
	}
	g.state = Idle
	g.selected = nil
	return nil
}

// Send spends the viewer's balance on the selected gift.
func (g *Gifting) Send(ctx context.Context) error {
	if _, err := g.guard.requireUser(); err != nil {
		return err
	}

	g.mu.Lock()
	if g.state != ConfirmOpen || g.selected == nil {
		g.mu.Unlock()
		return ErrInvalidTransition
	}
	gift := g.selected
	g.state = Sending
	g.mu.Unlock()

	sent, err := g.api.SendGift(ctx, g.endpoint, g.item.ID, gift.ID)
	if err != nil {
		g.setState(ConfirmOpen)
		return g.guard.fail(ctx, err)
	}
	if err := ctx.Err(); err != nil {
		g.reset()
		return err
	}

	g.item.ApplyGifts(sent)
	if sent.Balance != nil {
		g.guard.Session.Dispatch(identity.SetBalance(*sent.Balance))
	} else {
		g.guard.Session.Dispatch(identity.Spend(gift.Price))
	}
	g.reset()
	return nil
}

func (g *Gifting) checkContinue() error {
	u := g.guard.Session.User()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != CatalogOpen {
		return ErrInvalidTransition
	}
	if g.selected == nil {
		return ErrNoGiftSelected
	}
	if u == nil || g.selected.Price > u.Balance {
		return ErrNotAffordable
	}
	return nil
}

func (g *Gifting) setState(s GiftState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = s
}

func (g *Gifting) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Idle
	g.selected = nil
}
