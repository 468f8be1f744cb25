package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(client *mongo.Client, db string) *LeadRepository {
	return &LeadRepository{
		coll: client.Database(db).Collection(CollectionLeads),
	}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		log.Printf("❌ Error crítico en la base: %v", err)
		return err
	}
	return nil
}

func (r *LeadRepository) Recent(ctx context.Context, limit int) ([]entity.Lead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []entity.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *LeadRepository) Watch() (<-chan ChangeEvent, func(), error) {
	return watchCollection(r.coll, CollectionLeads, mongo.Pipeline{})
}
