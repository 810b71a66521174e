package identity

import "ktap/pkg/content"

// Action is a single mutation of the current user. Store.Dispatch is the
// only place actions are applied.
type Action interface {
	apply(u *content.User) *content.User
}

type setUser struct{ user *content.User }

func (a setUser) apply(*content.User) *content.User { return a.user.Clone() }

func SetUser(u *content.User) Action { return setUser{user: u} }

func ClearUser() Action { return setUser{} }

type setBalance struct{ balance int64 }

func (a setBalance) apply(u *content.User) *content.User {
	if u == nil {
		return nil
	}
	u.Balance = a.balance
	return u
}

// SetBalance applies the authoritative balance reported by the server.
func SetBalance(balance int64) Action { return setBalance{balance: balance} }

type spend struct{ amount int64 }

func (a spend) apply(u *content.User) *content.User {
	if u == nil {
		return nil
	}
	u.Balance -= a.amount
	return u
}

// Spend deducts amount locally, for servers that do not echo the balance.
func Spend(amount int64) Action { return spend{amount: amount} }
