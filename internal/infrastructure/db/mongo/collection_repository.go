package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

const collectionCounters = "counters"

// CollectionRepository stores T documents keyed by a numeric _id. New ids
// come from a per-collection sequence in the counters collection.
type CollectionRepository[T domain.Entity[T]] struct {
	name     string
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewCollectionRepository[T domain.Entity[T]](db *mongo.Database, name string) *CollectionRepository[T] {
	return &CollectionRepository[T]{
		name:     name,
		col:      db.Collection(name),
		counters: db.Collection(collectionCounters),
	}
}

func (r *CollectionRepository[T]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.name, err)
	}
	return items, nil
}

func (r *CollectionRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item T
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return item, nil
}

func (r *CollectionRepository[T]) Insert(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	item = item.WithKey(id)
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		var zero T
		return zero, fmt.Errorf("insert into %s: %w", r.name, err)
	}
	return item, nil
}

func (r *CollectionRepository[T]) Replace(ctx context.Context, item T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.Key()}, item)
	if err != nil {
		var zero T
		return zero, err
	}
	if res.MatchedCount == 0 {
		var zero T
		return zero, domain.ErrNotFound
	}
	return item, nil
}

func (r *CollectionRepository[T]) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CollectionRepository[T]) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Seed inserts items when the collection is empty and moves the id sequence
// past the highest seeded id. A non-empty collection is left alone.
func (r *CollectionRepository[T]) Seed(ctx context.Context, items []T) error {
	n, err := r.Count(ctx)
	if err != nil || n > 0 || len(items) == 0 {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(items))
	var maxID int64
	for _, item := range items {
		docs = append(docs, item)
		if item.Key() > maxID {
			maxID = item.Key()
		}
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed %s: %w", r.name, err)
	}

	_, err = r.counters.UpdateOne(ctx,
		bson.M{"_id": r.name},
		bson.M{"$max": bson.M{"seq": maxID}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *CollectionRepository[T]) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": r.name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", r.name, err)
	}
	return counter.Seq, nil
}
