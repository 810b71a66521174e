package interaction

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"ktap/pkg/api"
	"ktap/pkg/content"
	"ktap/pkg/identity"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrInFlight      = errors.New("request already in flight")
)

// Session is the part of identity.Store the controls need.
type Session interface {
	User() *content.User
	Dispatch(identity.Action)
}

type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Notifier receives every failure the user should hear about that is not a
// validation message shown inline.
type Notifier interface {
	Notify(err error)
}

type NotifierFunc func(err error)

func (f NotifierFunc) Notify(err error) { f(err) }

type LogNotifier struct {
	Logger *zap.SugaredLogger
}

func (n *LogNotifier) Notify(err error) {
	n.Logger.Warnw("action failed", "error", err)
}

func LoginPath(location string) string {
	return "/login?redirect=" + url.QueryEscape(location)
}

// Guard holds what every control shares: who is looking, where the control
// lives and where failures go.
type Guard struct {
	Session   Session
	Navigator Navigator
	Notifier  Notifier
	Location  string
}

func (g *Guard) requireUser() (*content.User, error) {
	u := g.Session.User()
	if u == nil {
		g.Navigator.Navigate(LoginPath(g.Location))
		return nil, ErrLoginRequired
	}
	return u, nil
}

// fail reports err unless the caller went away or the server sent a message
// meant to be shown next to the control.
func (g *Guard) fail(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if api.IsValidation(err) {
		return err
	}
	if g.Notifier != nil {
		g.Notifier.Notify(err)
	}
	return err
}
