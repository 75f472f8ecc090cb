package category

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog/pkg/mongodb"
)

var ErrNotFound = errors.New("category/repo: category not found")

type Repo struct {
	categories mongodb.IMongoCollection
	posts      mongodb.IMongoCollection
}

// NewRepo needs the posts collection as well: removing a category detaches
// it from dependent posts instead of removing them.
func NewRepo(categoriesCol, postsCol *mongo.Collection) *Repo {
	return &Repo{
		categories: mongodb.NewCollection(categoriesCol),
		posts:      mongodb.NewCollection(postsCol),
	}
}

func (r *Repo) Add(ctx context.Context, c *Category) (string, error) {
	_, err := r.categories.InsertOne(ctx, c)
	if err != nil {
		return ``, fmt.Errorf("category/repo: failed inserting a category: %w", err)
	}
	return c.Id, nil
}

// GetPublishedBySlug loads a category for the public category page.
// An unpublished category is indistinguishable from a missing one.
func (r *Repo) GetPublishedBySlug(ctx context.Context, slug string) (*Category, error) {
	c := new(Category)
	err := r.categories.FindOne(ctx, bson.M{"slug": slug, "is_published": true}).Decode(c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("category/repo: failed loading category: %w", err)
	}
	return c, nil
}

func (r *Repo) GetById(ctx context.Context, id string) (*Category, error) {
	c := new(Category)
	err := r.categories.FindOne(ctx, bson.M{"id": id}).Decode(c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("category/repo: failed loading category: %w", err)
	}
	return c, nil
}

// GetAllPublished returns the categories offered in the post form and the
// site navigation, ordered by title.
func (r *Repo) GetAllPublished(ctx context.Context) ([]*Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{"is_published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("category/repo: failed finding categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []*Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("category/repo: failed getting categories from cursor: %w", err)
	}
	return categories, nil
}

// GetByIds loads the categories referenced by a page of posts so their
// publication state can be checked without a query per post.
func (r *Repo) GetByIds(ctx context.Context, ids []string) (map[string]*Category, error) {
	byId := map[string]*Category{}
	if len(ids) == 0 {
		return byId, nil
	}

	cursor, err := r.categories.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("category/repo: failed finding categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []*Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("category/repo: failed getting categories from cursor: %w", err)
	}
	for _, c := range categories {
		byId[c.Id] = c
	}
	return byId, nil
}

// Delete removes the category after detaching it from dependent posts,
// which keeps those posts alive without a category.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.posts.UpdateMany(ctx,
		bson.M{"category_id": id},
		bson.M{"$set": bson.M{"category_id": ""}})
	if err != nil {
		return fmt.Errorf("category/repo: failed detaching posts: %w", err)
	}

	_, err = r.categories.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("category/repo: failed deleting category: %w", err)
	}
	return nil
}
