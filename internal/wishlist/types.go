package wishlist

import "time"

// Entry is one liked fabric with its bookkeeping metadata. Entries live
// independently of the cart.
type Entry struct {
	ID      string    `json:"id"`
	AddedAt time.Time `json:"added_at"`
	Notes   *string   `json:"notes,omitempty"`
}
