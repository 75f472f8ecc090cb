// Package access holds the visibility and ownership rules. Everything in
// here is a pure predicate: viewer identity and the clock are passed in
// explicitly, nothing is read from globals or request state.
package access

import (
	"time"

	"blog/pkg/user"
)

// Post is the read-side view a visibility decision needs. The concrete
// post type satisfies it with the category reference already resolved.
type Post interface {
	AuthorID() string
	IsPublished() bool
	PublishDate() time.Time
	// CategoryGate reports whether the post belongs to a category and,
	// if so, whether that category is published.
	CategoryGate() (published, hasCategory bool)
}

// IsPostVisible decides whether the viewer may read the post. Each of the
// three public conditions is independently overridden by authorship: an
// author sees their own unpublished, future-dated or category-hidden post,
// but so does an author whose post only fails one of the gates.
func IsPostVisible(p Post, viewer *user.User, now time.Time) bool {
	owner := viewer != nil && viewer.Id == p.AuthorID()

	if !p.IsPublished() && !owner {
		return false
	}
	if p.PublishDate().After(now) && !owner {
		return false
	}
	if catPublished, hasCategory := p.CategoryGate(); hasCategory && !catPublished && !owner {
		return false
	}
	return true
}

// IsPubliclyVisible is the listing gate: no ownership override, the post
// must pass all three conditions on its own.
func IsPubliclyVisible(p Post, now time.Time) bool {
	if !p.IsPublished() || p.PublishDate().After(now) {
		return false
	}
	catPublished, hasCategory := p.CategoryGate()
	return !hasCategory || catPublished
}

// CanMutate authorizes edit/delete of an owned resource. Anonymous viewers
// are never authorized.
func CanMutate(authorID string, viewer *user.User) bool {
	return viewer != nil && viewer.Id != "" && viewer.Id == authorID
}
