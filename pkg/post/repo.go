package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog/pkg/category"
	"blog/pkg/comment"
	"blog/pkg/common"
	"blog/pkg/location"
	"blog/pkg/logger"
	"blog/pkg/mongodb"
	"blog/pkg/user"
)

var (
	ErrNotFound        = errors.New("post/repo: post not found")
	ErrCommentNotFound = errors.New("post/repo: comment not found")
)

type (
	ICategoryResolver interface {
		GetByIds(context.Context, []string) (map[string]*category.Category, error)
	}
	ILocationResolver interface {
		GetByIds(context.Context, []string) (map[string]*location.Location, error)
	}
)

type Repo struct {
	posts      mongodb.IMongoCollection
	comments   mongodb.IMongoCollection
	categories ICategoryResolver
	locations  ILocationResolver
}

func NewPostRepo(postsCol, commentsCol *mongo.Collection, categories ICategoryResolver, locations ILocationResolver) *Repo {
	return &Repo{
		posts:      mongodb.NewCollection(postsCol),
		comments:   mongodb.NewCollection(commentsCol),
		categories: categories,
		locations:  locations,
	}
}

func (r *Repo) Add(ctx context.Context, p *Post) (PostId, error) {
	_, err := r.posts.InsertOne(ctx, p)
	if err != nil {
		return PostId(``), fmt.Errorf("post/repo: failed inserting a post: %w", err)
	}
	return p.Id, nil
}

func (r *Repo) Update(ctx context.Context, p *Post) error {
	_, err := r.posts.UpdateOne(ctx, bson.M{"id": p.Id}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("post/repo: failed updating post: %w", err)
	}
	return nil
}

// Delete removes the post and cascades to its comments.
func (r *Repo) Delete(ctx context.Context, id PostId) error {
	_, err := r.comments.DeleteMany(ctx, bson.M{"post_id": string(id)})
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post comments: %w", err)
	}
	_, err = r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting post: %w", err)
	}
	return nil
}

// DeleteByAuthor cascades a user removal: the user's posts go away together
// with every comment on them.
func (r *Repo) DeleteByAuthor(ctx context.Context, authorId string) error {
	cursor, err := r.posts.Find(ctx, bson.M{"author.id": authorId})
	if err != nil {
		return fmt.Errorf("post/repo: failed finding author posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return fmt.Errorf("post/repo: failed getting posts from cursor: %w", err)
	}

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, string(p.Id))
	}
	if len(ids) > 0 {
		if _, err := r.comments.DeleteMany(ctx, bson.M{"post_id": bson.M{"$in": ids}}); err != nil {
			return fmt.Errorf("post/repo: failed deleting comments: %w", err)
		}
	}
	if _, err := r.posts.DeleteMany(ctx, bson.M{"author.id": authorId}); err != nil {
		return fmt.Errorf("post/repo: failed deleting author posts: %w", err)
	}
	return nil
}

func (r *Repo) GetById(ctx context.Context, id PostId) (*Post, error) {
	p := new(Post)
	err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("post/repo: failed loading post: %w", err)
	}
	if err := r.resolveRefs(ctx, []*Post{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// ListVisible returns the page of publicly visible posts: published, with a
// publication date in the past, in no category or in a published one. The
// category clause is decided application-side against live category rows.
// Comment counts are recomputed from live comment rows for display.
func (r *Repo) ListVisible(ctx context.Context, now time.Time, page string) ([]*Post, common.Page, error) {
	candidates, err := r.find(ctx, bson.M{
		"is_published": true,
		"pub_date":     bson.M{"$lte": now},
	})
	if err != nil {
		return nil, common.Page{}, err
	}
	if err := r.resolveRefs(ctx, candidates); err != nil {
		return nil, common.Page{}, err
	}

	visible := candidates[:0]
	for _, p := range candidates {
		if published, has := p.CategoryGate(); !has || published {
			visible = append(visible, p)
		}
	}

	return r.paginate(ctx, visible, page)
}

// ListByCategory is ListVisible constrained to one category. The caller is
// responsible for having resolved a published category; posts here carry a
// category by construction, so no extra category clause is needed.
func (r *Repo) ListByCategory(ctx context.Context, cat *category.Category, now time.Time, page string) ([]*Post, common.Page, error) {
	posts, err := r.find(ctx, bson.M{
		"is_published": true,
		"pub_date":     bson.M{"$lte": now},
		"category_id":  cat.Id,
	})
	if err != nil {
		return nil, common.Page{}, err
	}
	for _, p := range posts {
		p.Category = cat
	}
	if err := r.resolveLocations(ctx, posts); err != nil {
		return nil, common.Page{}, err
	}

	return r.paginate(ctx, posts, page)
}

// ListByAuthor returns every post by the user, in any publication state.
// The profile page deliberately applies no visibility filter.
func (r *Repo) ListByAuthor(ctx context.Context, username string, page string) ([]*Post, common.Page, error) {
	posts, err := r.find(ctx, bson.M{"author.username": username})
	if err != nil {
		return nil, common.Page{}, err
	}
	if err := r.resolveRefs(ctx, posts); err != nil {
		return nil, common.Page{}, err
	}

	return r.paginate(ctx, posts, page)
}

// AddComment persists the comment and bumps the post's denormalized counter
// as one transaction, so either both happen or neither does.
func (r *Repo) AddComment(ctx context.Context, postId PostId, commenter *user.User, text string) (*comment.Comment, error) {
	cmt := &comment.Comment{
		Id:      comment.CommentId(common.RandStringRunes(12)),
		PostId:  string(postId),
		Author:  commenter,
		Text:    text,
		Created: time.Now(),
	}

	session, err := r.posts.Database().Client().StartSession()
	if err != nil {
		logger.Log(ctx).Errorf("post/repo: start session failed: %v", err)
		return nil, err
	}
	defer session.EndSession(ctx)

	callback := func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.comments.InsertOne(sc, cmt); err != nil {
			return nil, fmt.Errorf("post/repo: failed inserting comment: %w", err)
		}
		_, err := r.posts.UpdateOne(sc,
			bson.M{"id": postId},
			bson.M{"$inc": bson.M{"comment_count": 1}})
		if err != nil {
			return nil, fmt.Errorf("post/repo: failed bumping comment count: %w", err)
		}
		return cmt, nil
	}

	if _, err := session.WithTransaction(ctx, callback); err != nil {
		logger.Log(ctx).Errorf("post/repo: comment transaction failed: %v", err)
		return nil, err
	}

	return cmt, nil
}

func (r *Repo) GetComment(ctx context.Context, id comment.CommentId) (*comment.Comment, error) {
	cmt := new(comment.Comment)
	err := r.comments.FindOne(ctx, bson.M{"id": id}).Decode(cmt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("post/repo: failed loading comment: %w", err)
	}
	return cmt, nil
}

func (r *Repo) UpdateComment(ctx context.Context, cmt *comment.Comment) error {
	_, err := r.comments.UpdateOne(ctx,
		bson.M{"id": cmt.Id},
		bson.M{"$set": bson.M{"text": cmt.Text}})
	if err != nil {
		return fmt.Errorf("post/repo: failed updating comment: %w", err)
	}
	return nil
}

// DeleteComment removes the comment row only. The post's comment_count is
// left as is; listing pages recompute it from live rows anyway.
func (r *Repo) DeleteComment(ctx context.Context, id comment.CommentId) error {
	_, err := r.comments.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("post/repo: failed deleting comment: %w", err)
	}
	return nil
}

// CommentsForPost returns the post's comments, oldest first.
func (r *Repo) CommentsForPost(ctx context.Context, postId PostId) ([]*comment.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.comments.Find(ctx, bson.M{"post_id": string(postId)}, opts)
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding comments: %w", err)
	}
	defer cursor.Close(ctx)

	comments := []*comment.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("post/repo: failed getting comments from cursor: %w", err)
	}
	return comments, nil
}

func (r *Repo) CountComments(ctx context.Context, postId PostId) (int, error) {
	n, err := r.comments.CountDocuments(ctx, bson.M{"post_id": string(postId)})
	if err != nil {
		return 0, fmt.Errorf("post/repo: failed counting comments: %w", err)
	}
	return int(n), nil
}

// UpdateAuthorUsername rewrites the denormalized author snapshot on the
// user's posts and comments after a profile rename.
func (r *Repo) UpdateAuthorUsername(ctx context.Context, userId, username string) error {
	set := bson.M{"$set": bson.M{"author.username": username}}
	if _, err := r.posts.UpdateMany(ctx, bson.M{"author.id": userId}, set); err != nil {
		return fmt.Errorf("post/repo: failed renaming post author: %w", err)
	}
	if _, err := r.comments.UpdateMany(ctx, bson.M{"author.id": userId}, set); err != nil {
		return fmt.Errorf("post/repo: failed renaming comment author: %w", err)
	}
	return nil
}

// find loads posts matching the filter, newest publication date first.
func (r *Repo) find(ctx context.Context, filter bson.M) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "pub_date", Value: -1}})
	cursor, err := r.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("post/repo: failed finding posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("post/repo: failed getting posts from cursor: %w", err)
	}
	return posts, nil
}

// paginate clamps the requested page, slices the listing and attaches live
// comment counts to the posts on the page.
func (r *Repo) paginate(ctx context.Context, posts []*Post, page string) ([]*Post, common.Page, error) {
	pg := common.Paginate(len(posts), page, common.PageSize)
	pagePosts := posts[pg.Offset : pg.Offset+pg.Limit]

	for _, p := range pagePosts {
		n, err := r.CountComments(ctx, p.Id)
		if err != nil {
			return nil, common.Page{}, err
		}
		p.CommentCount = n
	}
	return pagePosts, pg, nil
}

func (r *Repo) resolveRefs(ctx context.Context, posts []*Post) error {
	if err := r.resolveCategories(ctx, posts); err != nil {
		return err
	}
	return r.resolveLocations(ctx, posts)
}

func (r *Repo) resolveCategories(ctx context.Context, posts []*Post) error {
	ids := []string{}
	for _, p := range posts {
		if p.CategoryId != "" {
			ids = append(ids, p.CategoryId)
		}
	}
	categories, err := r.categories.GetByIds(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.CategoryId != "" {
			p.Category = categories[p.CategoryId]
		}
	}
	return nil
}

func (r *Repo) resolveLocations(ctx context.Context, posts []*Post) error {
	ids := []string{}
	for _, p := range posts {
		if p.LocationId != "" {
			ids = append(ids, p.LocationId)
		}
	}
	locations, err := r.locations.GetByIds(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p.LocationId != "" {
			p.Location = locations[p.LocationId]
		}
	}
	return nil
}
