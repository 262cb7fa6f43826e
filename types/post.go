package types

import "time"

// Post represents a blog post. Title and content may be changed by the
// owning user; CreatedAt and AuthorID are set once at creation.
type Post struct {
	// ID is the unique identifier of the post.
	ID int `json:"id" db:"id"`

	// Title is the post title.
	Title string `json:"title" db:"title"`

	// Content is the post body.
	Content string `json:"content" db:"content"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// AuthorID references the user who created the post.
	AuthorID int `json:"author_id" db:"author_id"`
}
