package category

import "time"

// Category groups posts under a unique slug. An unpublished category hides
// every post in it from public listings; there is no category owner, so
// nothing overrides that.
type Category struct {
	Id          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Slug        string    `bson:"slug" json:"slug"`
	Published   bool      `bson:"is_published" json:"isPublished"`
	Created     time.Time `bson:"created_at" json:"created"`
}
