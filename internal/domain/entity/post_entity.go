package entity

import (
	"time"
)

// Post is a board entry owned by exactly one user. AuthorName is denormalized
// from the users table on read; it is never written through this entity.
// ModifiedAt is bumped by the store on every content mutation and is always
// >= CreatedAt.
type Post struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
	ModifiedAt time.Time
}
