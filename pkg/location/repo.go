package location

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog/pkg/mongodb"
)

var ErrNotFound = errors.New("location/repo: location not found")

type Repo struct {
	locations mongodb.IMongoCollection
	posts     mongodb.IMongoCollection
}

func NewRepo(locationsCol, postsCol *mongo.Collection) *Repo {
	return &Repo{
		locations: mongodb.NewCollection(locationsCol),
		posts:     mongodb.NewCollection(postsCol),
	}
}

func (r *Repo) Add(ctx context.Context, l *Location) (string, error) {
	_, err := r.locations.InsertOne(ctx, l)
	if err != nil {
		return ``, fmt.Errorf("location/repo: failed inserting a location: %w", err)
	}
	return l.Id, nil
}

func (r *Repo) GetById(ctx context.Context, id string) (*Location, error) {
	l := new(Location)
	err := r.locations.FindOne(ctx, bson.M{"id": id}).Decode(l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("location/repo: failed loading location: %w", err)
	}
	return l, nil
}

func (r *Repo) GetAllPublished(ctx context.Context) ([]*Location, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.locations.Find(ctx, bson.M{"is_published": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("location/repo: failed finding locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := []*Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("location/repo: failed getting locations from cursor: %w", err)
	}
	return locations, nil
}

func (r *Repo) GetByIds(ctx context.Context, ids []string) (map[string]*Location, error) {
	byId := map[string]*Location{}
	if len(ids) == 0 {
		return byId, nil
	}

	cursor, err := r.locations.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("location/repo: failed finding locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := []*Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("location/repo: failed getting locations from cursor: %w", err)
	}
	for _, l := range locations {
		byId[l.Id] = l
	}
	return byId, nil
}

// Delete detaches the location from dependent posts before removing it.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.posts.UpdateMany(ctx,
		bson.M{"location_id": id},
		bson.M{"$set": bson.M{"location_id": ""}})
	if err != nil {
		return fmt.Errorf("location/repo: failed detaching posts: %w", err)
	}

	_, err = r.locations.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("location/repo: failed deleting location: %w", err)
	}
	return nil
}
