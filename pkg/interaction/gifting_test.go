package interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"ktap/pkg/api"
	"ktap/pkg/content"
)

var catalog = []*content.Gift{
	{ID: 1, Name: "Heart", Description: "love it", Price: 200},
	{ID: 2, Name: "Crown", Description: "masterpiece", Price: 1000},
}

func openGifting(t *testing.T, u *content.User) (*Gifting, *MockGiftAPI, *recorder, context.Context, func() *content.User) {
	ctrl := gomock.NewController(t)
	mock := NewMockGiftAPI(ctrl)
	guard, store, rec := newGuard(t, u)
	g := NewGifting(newItem(), api.Reviews, mock, guard)
	ctx := context.Background()

	mock.EXPECT().Gifts(ctx).Return(catalog, nil)
	if err := g.Open(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g, mock, rec, ctx, store.User
}

func TestGiftSendScenario(t *testing.T) {
	g, mock, _, ctx, user := openGifting(t, viewer)
	if g.State() != CatalogOpen || len(g.Catalog()) != 2 {
		t.Fatalf("unexpected state after open: %v", g.State())
	}

	if err := g.Select(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Continue(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != ConfirmOpen || g.Warning() != "this action takes effect immediately and cannot be undone" {
		t.Fatalf("unexpected confirm state %v", g.State())
	}

	receipts := []*content.GiftReceipt{{Gift: *catalog[0], Count: 3}}
	mock.EXPECT().SendGift(ctx, api.Reviews, "r1", int64(1)).Return(&content.GiftSent{Count: 3, Data: receipts}, nil)
	if err := g.Send(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b := user().Balance; b != 300 {
		t.Fatalf("expected balance 300 but was %d", b)
	}
	if g.item.Counts().Gifts != 3 || len(g.item.Receipts()) != 1 {
		t.Fatalf("expected server gift counts, got %+v", g.item.Counts())
	}
	if g.State() != Idle || g.Selected() != nil {
		t.Fatalf("expected idle after send, got %v", g.State())
	}
}

func TestGiftSendUsesServerBalance(t *testing.T) {
	g, mock, _, ctx, user := openGifting(t, viewer)
	g.Select(1)
	g.Continue()

	balance := int64(250)
	mock.EXPECT().SendGift(ctx, api.Reviews, "r1", int64(1)).Return(&content.GiftSent{Count: 1, Balance: &balance}, nil)
	if err := g.Send(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := user().Balance; b != 250 {
		t.Fatalf("expected server balance 250 but was %d", b)
	}
}

func TestGiftContinueGate(t *testing.T) {
	cases := []struct {
		name     string
		balance  int64
		selected []int64
		expected error
	}{
		{"NothingSelected", 500, nil, ErrNoGiftSelected},
		{"Affordable", 500, []int64{1}, nil},
		{"ExactBalance", 200, []int64{1}, nil},
		{"TooExpensive", 500, []int64{2}, ErrNotAffordable},
		{"Deselected", 500, []int64{1, 1}, ErrNoGiftSelected},
		{"Switched", 500, []int64{2, 1}, nil},
	}

	for i, tc := range cases {
		g, _, _, _, _ := openGifting(t, &content.User{ID: 7, Balance: tc.balance})
		for _, id := range tc.selected {
			if err := g.Select(id); err != nil {
				t.Fatalf("test case %d %s: unexpected select error %v", i, tc.name, err)
			}
		}
		if g.CanContinue() != (tc.expected == nil) {
			t.Fatalf("test case %d %s failed, CanContinue was %v", i, tc.name, g.CanContinue())
		}
		if err := g.Continue(); err != tc.expected {
			t.Fatalf("test case %d %s failed, expected %v but was %v", i, tc.name, tc.expected, err)
		}
	}
}

func TestGiftTransitions(t *testing.T) {
	g, _, _, _, _ := openGifting(t, viewer)

	if err := g.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("back from catalog must fail, was %v", err)
	}
	if err := g.Select(42); !errors.Is(err, ErrUnknownGift) {
		t.Fatalf("expected ErrUnknownGift but was %v", err)
	}

	g.Select(1)
	g.Continue()
	if err := g.Select(2); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("select in confirm must fail, was %v", err)
	}
	if err := g.Back(); err != nil || g.State() != CatalogOpen {
		t.Fatalf("expected catalog after back, got %v %v", g.State(), err)
	}
	if g.Selected() == nil || g.Selected().ID != 1 {
		t.Fatal("back must keep the selection")
	}

	if err := g.Close(); err != nil || g.State() != Idle || g.Selected() != nil {
		t.Fatalf("expected idle after close, got %v %v", g.State(), err)
	}
	if err := g.Send(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("send from idle must fail, was %v", err)
	}
}

func TestGiftSendFailure(t *testing.T) {
	g, mock, rec, ctx, user := openGifting(t, viewer)
	g.Select(1)
	g.Continue()

	mock.EXPECT().SendGift(ctx, api.Reviews, "r1", int64(1)).Return(nil, &api.ValidationError{Message: "balance is too low"})
	err := g.Send(ctx)
	var verr *api.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error but was %v", err)
	}
	if g.State() != ConfirmOpen {
		t.Fatalf("expected confirm after failure but was %v", g.State())
	}
	if user().Balance != 500 || g.item.Counts().Gifts != 2 {
		t.Fatal("failure must not change balance or gifts")
	}
	if len(rec.errors) != 0 {
		t.Fatal("validation errors are shown inline, not notified")
	}

	mock.EXPECT().SendGift(ctx, api.Reviews, "r1", int64(1)).Return(nil, errors.New("connection reset"))
	g.Send(ctx)
	if len(rec.errors) != 1 {
		t.Fatalf("expected one notification but was %v", rec.errors)
	}
}

func TestGiftUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockGiftAPI(ctrl)
	guard, _, rec := newGuard(t, nil)
	g := NewGifting(newItem(), api.Reviews, mock, guard)

	if err := g.Open(context.Background()); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired but was %v", err)
	}
	if len(rec.paths) != 1 || rec.paths[0] != LoginPath("/reviews/r1") {
		t.Fatalf("unexpected navigation %v", rec.paths)
	}
	if g.State() != Idle {
		t.Fatal("expected idle")
	}
}

func TestGiftSendCancelledDiscardsResponse(t *testing.T) {
	g, mock, rec, _, user := openGifting(t, viewer)
	g.Select(1)
	if err := g.Continue(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	balance := int64(300)
	mock.EXPECT().SendGift(ctx, api.Reviews, "r1", int64(1)).DoAndReturn(
		func(context.Context, api.Endpoint, string, int64) (*content.GiftSent, error) {
			cancel()
			return &content.GiftSent{Count: 3, Data: []*content.GiftReceipt{{Gift: *catalog[0], Count: 3}}, Balance: &balance}, nil
		})

	if err := g.Send(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled but was %v", err)
	}
	if g.State() != Idle || g.Selected() != nil {
		t.Fatalf("expected idle dialog, got %v", g.State())
	}
	if b := user().Balance; b != viewer.Balance {
		t.Fatalf("stale response must not touch the balance, got %d", b)
	}
	if g.item.Counts().Gifts != 2 || len(g.item.Receipts()) != 0 {
		t.Fatalf("stale response must not touch the item, got %+v", g.item.Counts())
	}
	if len(rec.errors) != 0 {
		t.Fatalf("cancellation must not be notified: %v", rec.errors)
	}
}
