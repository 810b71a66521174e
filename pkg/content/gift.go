package content

type Gift struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Price       int64  `json:"price"`
}

type GiftReceipt struct {
	Gift
	Count int64 `json:"count"`
}

// GiftSent is the server answer to a gift send. Balance is the sender's
// balance after the send; older servers omit it.
type GiftSent struct {
	Count   int64          `json:"count"`
	Data    []*GiftReceipt `json:"data"`
	Balance *int64         `json:"balance,omitempty"`
}
