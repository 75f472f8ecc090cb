// Package mongodb wraps the mongo-driver collection API behind interfaces
// so repositories can be unit-tested with generated mocks.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ( // Interfaces
	IMongoCollection interface {
		InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (IMongoInsertOneResult, error)
		UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (IMongoUpdateResult, error)
		UpdateMany(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (IMongoUpdateResult, error)
		DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (IMongoDeleteResult, error)
		DeleteMany(context.Context, interface{}, ...*options.DeleteOptions) (IMongoDeleteResult, error)
		FindOne(context.Context, interface{}, ...*options.FindOneOptions) IMongoSingleResult
		Find(context.Context, interface{}, ...*options.FindOptions) (IMongoCursor, error)
		CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
		Database() *mongo.Database
	}

	IMongoCursor interface {
		Close(context.Context) error
		All(context.Context, interface{}) error
	}

	IMongoSingleResult    interface{ Decode(interface{}) error }
	IMongoInsertOneResult interface{}
	IMongoUpdateResult    interface{}
	IMongoDeleteResult    interface{}
)

type ( // Structs
	MongoCursor struct{ cur *mongo.Cursor }

	MongoCollection struct {
		Coll *mongo.Collection
	}

	MongoSingleResult    struct{ res *mongo.SingleResult }
	MongoInsertOneResult struct{ res *mongo.InsertOneResult }
	MongoUpdateResult    struct{ res *mongo.UpdateResult }
	MongoDeleteResult    struct{ res *mongo.DeleteResult }
)

func NewCollection(coll *mongo.Collection) *MongoCollection {
	return &MongoCollection{Coll: coll}
}

// MongoSingleResult

func (sr *MongoSingleResult) Decode(v interface{}) error {
	return sr.res.Decode(v)
}

// MongoCursor

func (cur *MongoCursor) Close(ctx context.Context) error {
	return cur.cur.Close(ctx)
}
func (cur *MongoCursor) All(ctx context.Context, results interface{}) error {
	return cur.cur.All(ctx, results)
}

// MongoCollection

func (col *MongoCollection) Database() *mongo.Database {
	return col.Coll.Database()
}

func (col *MongoCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (IMongoInsertOneResult, error) {
	insertOneResult, err := col.Coll.InsertOne(ctx, document, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoInsertOneResult{res: insertOneResult}, nil
}

func (col *MongoCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (IMongoUpdateResult, error) {
	updateResult, err := col.Coll.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoUpdateResult{res: updateResult}, nil
}

func (col *MongoCollection) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (IMongoUpdateResult, error) {
	updateResult, err := col.Coll.UpdateMany(ctx, filter, update, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoUpdateResult{res: updateResult}, nil
}

func (col *MongoCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (IMongoDeleteResult, error) {
	deleteResult, err := col.Coll.DeleteOne(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoDeleteResult{res: deleteResult}, nil
}

func (col *MongoCollection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (IMongoDeleteResult, error) {
	deleteResult, err := col.Coll.DeleteMany(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoDeleteResult{res: deleteResult}, nil
}

func (col *MongoCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) IMongoSingleResult {
	singleResult := col.Coll.FindOne(ctx, filter, opts...)
	return &MongoSingleResult{res: singleResult}
}

func (col *MongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (IMongoCursor, error) {
	cursorResult, err := col.Coll.Find(ctx, filter, opts...)
	return &MongoCursor{cur: cursorResult}, err
}

func (col *MongoCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return col.Coll.CountDocuments(ctx, filter, opts...)
}
