package post

import (
	"time"

	"blog/pkg/category"
	"blog/pkg/location"
	"blog/pkg/user"
)

type PostId string

type Post struct {
	Id      PostId     `bson:"id" json:"id"`
	Title   string     `bson:"title" json:"title"`
	Text    string     `bson:"text" json:"text"`
	Author  *user.User `bson:"author" json:"author"`

	// PubDate may be in the future for scheduled publications.
	PubDate time.Time `bson:"pub_date" json:"pubDate"`

	// Empty references mean no category/location; both are emptied when
	// the referenced record is removed.
	CategoryId string `bson:"category_id,omitempty" json:"-"`
	LocationId string `bson:"location_id,omitempty" json:"-"`

	// Image is a path relative to the media dir, opaque to the core.
	Image string `bson:"image,omitempty" json:"image,omitempty"`

	Published bool `bson:"is_published" json:"isPublished"`

	// CommentCount is a denormalized aggregate. Listing pages override it
	// with a live count at read time; the detail page shows the live
	// comment rows directly.
	CommentCount int `bson:"comment_count" json:"commentCount"`

	Created time.Time `bson:"created_at" json:"created"`

	// Resolved from their collections at load time, never stored.
	Category *category.Category `bson:"-" json:"category,omitempty"`
	Location *location.Location `bson:"-" json:"location,omitempty"`
}

func (p *Post) AuthorID() string {
	if p.Author == nil {
		return ""
	}
	return p.Author.Id
}

func (p *Post) IsPublished() bool { return p.Published }

func (p *Post) PublishDate() time.Time { return p.PubDate }

// CategoryGate treats a dangling category reference like no category at
// all, which matches the detach-on-delete store rule.
func (p *Post) CategoryGate() (published, hasCategory bool) {
	if p.CategoryId == "" || p.Category == nil {
		return false, false
	}
	return p.Category.Published, true
}
