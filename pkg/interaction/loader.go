package interaction

import (
	"context"
	"sync"

	"ktap/pkg/content"
)

const DefaultPageSize = 10

type Fetch[T any] func(ctx context.Context, skip, limit int64) (*content.Page[T], error)

// Loader keeps an append-only view over a paginated list.
type Loader[T any] struct {
	fetch Fetch[T]
	idOf  func(T) string
	limit int64

	mu      sync.Mutex
	items   []T
	skip    int64
	step    int64
	count   int64
	hasMore bool
	loading bool
}

func NewLoader[T any](limit int64, fetch Fetch[T], idOf func(T) string) *Loader[T] {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return &Loader[T]{fetch: fetch, idOf: idOf, limit: limit}
}

// Load fetches the first page, dropping whatever was loaded before.
func (l *Loader[T]) Load(ctx context.Context) error {
	page, err := l.get(ctx, 0)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T(nil), page.Data...)
	l.apply(0, page)
	return nil
}

func (l *Loader[T]) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if !l.hasMore {
		l.mu.Unlock()
		return nil
	}
	next := l.skip + l.step
	l.mu.Unlock()

	page, err := l.get(ctx, next)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	seen := make(map[string]struct{}, len(l.items))
	for _, it := range l.items {
		seen[l.idOf(it)] = struct{}{}
	}
	for _, it := range page.Data {
		if _, ok := seen[l.idOf(it)]; ok {
			continue
		}
		l.items = append(l.items, it)
	}
	l.apply(next, page)
	return nil
}

func (l *Loader[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make([]T, len(l.items))
	copy(res, l.items)
	return res
}

func (l *Loader[T]) Count() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

func (l *Loader[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

func (l *Loader[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *Loader[T]) Prepend(it T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T{it}, l.items...)
	l.count++
}

// Remove drops the first item with the given id.
func (l *Loader[T]) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if l.idOf(it) != id {
			continue
		}
		l.items = append(l.items[:i], l.items[i+1:]...)
		if l.count > 0 {
			l.count--
		}
		return true
	}
	return false
}

func (l *Loader[T]) get(ctx context.Context, skip int64) (*content.Page[T], error) {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return nil, ErrInFlight
	}
	l.loading = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()

	page, err := l.fetch(ctx, skip, l.limit)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

// apply must be called with l.mu held. The next page starts after the
// limit the server actually applied, which may be lower than requested.
func (l *Loader[T]) apply(skip int64, page *content.Page[T]) {
	l.skip = skip
	l.step = l.limit
	if page.Limit > 0 {
		l.step = page.Limit
	}
	l.count = page.Count
	l.hasMore = page.HasMore()
}
