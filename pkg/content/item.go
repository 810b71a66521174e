package content

import (
	"sync"
	"time"
)

type Kind string

const (
	Review         Kind = "review"
	DiscussionPost Kind = "post"
)

type Meta struct {
	Ups      int64 `json:"ups"`
	Downs    int64 `json:"downs"`
	Gifts    int64 `json:"gifts"`
	Comments int64 `json:"comments"`
}

type Viewer struct {
	Direction Reaction `json:"direction"`
	Reported  bool     `json:"reported"`
}

type Thumbs struct {
	Ups   int64 `json:"ups"`
	Downs int64 `json:"downs"`
}

// Item is a review or a discussion post as the API returns it. Controls
// mutate it in place after each successful action, so all access after
// decoding goes through its methods.
type Item struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	ParentID  string         `json:"parentId"`
	Title     string         `json:"title,omitempty"`
	Content   string         `json:"content"`
	Score     int            `json:"score,omitempty"`
	User      *Author        `json:"user"`
	Meta      Meta           `json:"meta"`
	Viewer    Viewer         `json:"viewer"`
	Gifts     []*GiftReceipt `json:"gifts"`
	CreatedAt time.Time      `json:"createdAt"`

	mu sync.RWMutex
}

func (i *Item) AuthorID() int64 {
	if i.User == nil {
		return 0
	}
	return i.User.ID
}

func (i *Item) Counts() Meta {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.Meta
}

func (i *Item) Direction() Reaction {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.Viewer.Direction
}

func (i *Item) Reported() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.Viewer.Reported
}

func (i *Item) Receipts() []*GiftReceipt {
	i.mu.RLock()
	defer i.mu.RUnlock()
	res := make([]*GiftReceipt, len(i.Gifts))
	copy(res, i.Gifts)
	return res
}

// ApplyThumbs takes the server's counts as they are and toggles the viewer
// reaction towards d.
func (i *Item) ApplyThumbs(t *Thumbs, d Reaction) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.Meta.Ups = t.Ups
	i.Meta.Downs = t.Downs
	i.Viewer.Direction = i.Viewer.Direction.Toggle(d)
}

func (i *Item) ApplyGifts(sent *GiftSent) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.Meta.Gifts = sent.Count
	i.Gifts = sent.Data
}

func (i *Item) MarkReported() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.Viewer.Reported = true
}

func (i *Item) AddComments(delta int64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.Meta.Comments += delta
	if i.Meta.Comments < 0 {
		i.Meta.Comments = 0
	}
}
