package models

import "time"

// User is the public account record. The credential hash never leaves the
// store, so it is deliberately not part of this struct.
type User struct {
	ID        int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
