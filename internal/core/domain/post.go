package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("invalid input")
var ErrUpload = errors.New("upload failed")
var ErrCoverRequired = errors.New("cover image is required")

// Post is the core aggregate: a text entry with an associated cover image.
type Post struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Title   string `json:"title" bson:"title"`
	Summary string `json:"summary" bson:"summary"`
	Content string `json:"content" bson:"content"`
	// Cover is a local path or hosted URL, depending on the upload backend.
	Cover    string `json:"cover" bson:"cover"`
	AuthorID string `json:"author_id" bson:"author_id"`
	// AuthorName is resolved against the user collection at read time
	// and never persisted with the post document.
	AuthorName string    `json:"author" bson:"-"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
