package content

import "time"

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	User      *Author   `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
