package content

type Page[T any] struct {
	Data  []T   `json:"data"`
	Skip  int64 `json:"skip"`
	Limit int64 `json:"limit"`
	Count int64 `json:"count"`
}

func (p *Page[T]) HasMore() bool {
	return p.Skip+p.Limit < p.Count
}

// Envelope wraps single objects in API responses.
type Envelope[T any] struct {
	Data T `json:"data"`
}
