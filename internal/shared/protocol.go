package shared

import "time"

// Entry is one guestbook record, both the stored shape and the wire shape.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}

type AddEntryRequest struct {
	Text string `json:"text"`
}

type WhoAmIResponse struct {
	UserID string `json:"userId"`
}
