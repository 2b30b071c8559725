package entities

import "time"

// WaitlistEntry is one early-access signup. Email is the partition key, so
// a given address can only join once.
type WaitlistEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
