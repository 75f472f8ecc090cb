package location

import "time"

// Location is an optional attribute of a post. Unlike categories it has no
// public page of its own; an unpublished location is simply not offered in
// the post form.
type Location struct {
	Id        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Published bool      `bson:"is_published" json:"isPublished"`
	Created   time.Time `bson:"created_at" json:"created"`
}
