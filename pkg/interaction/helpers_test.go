package interaction

import (
	"testing"

	"go.uber.org/zap"

	"ktap/pkg/content"
	"ktap/pkg/identity"
)

type recorder struct {
	paths  []string
	errors []error
}

func newGuard(t *testing.T, u *content.User) (*Guard, *identity.Store, *recorder) {
	store := identity.NewStore(nil, nil, zap.NewNop().Sugar())
	if u != nil {
		store.Dispatch(identity.SetUser(u))
	}
	rec := &recorder{}
	g := &Guard{
		Session:   store,
		Navigator: NavigatorFunc(func(p string) { rec.paths = append(rec.paths, p) }),
		Notifier:  NotifierFunc(func(err error) { rec.errors = append(rec.errors, err) }),
		Location:  "/reviews/r1",
	}
	return g, store, rec
}

func newItem() *content.Item {
	return &content.Item{
		ID:   "r1",
		Kind: content.Review,
		User: &content.Author{ID: 2, Name: "author"},
		Meta: content.Meta{Ups: 5, Downs: 1, Gifts: 2, Comments: 1},
	}
}

var viewer = &content.User{ID: 7, Name: "neo", Balance: 500}
