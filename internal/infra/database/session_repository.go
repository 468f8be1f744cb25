package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

type SessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(client *mongo.Client, db string) *SessionRepository {
	return &SessionRepository{
		coll: client.Database(db).Collection(CollectionSessions),
	}
}

// ReachStep hace upsert de la sesión en una sola operación: $addToSet
// garantiza idempotencia y que steps_reached nunca se achique.
func (r *SessionRepository) ReachStep(ctx context.Context, sessionID string, step entity.FunnelStep) error {
	filter := bson.D{{Key: "_id", Value: sessionID}}
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "steps_reached", Value: step}}},
		{Key: "$set", Value: bson.D{
			{Key: "current_step", Value: step},
			{Key: "last_active", Value: time.Now()},
		}},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	return err
}

// Recent devuelve las N sesiones con actividad más reciente.
func (r *SessionRepository) Recent(ctx context.Context, limit int) ([]entity.Session, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "last_active", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []entity.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *SessionRepository) Watch() (<-chan ChangeEvent, func(), error) {
	return watchCollection(r.coll, CollectionSessions, mongo.Pipeline{})
}
