package database

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/PescadorStudios/Vlado/internal/entity"
)

type BienestarRepository struct {
	coll *mongo.Collection
}

func NewBienestarRepository(client *mongo.Client, db string) *BienestarRepository {
	return &BienestarRepository{
		coll: client.Database(db).Collection(CollectionBienestar),
	}
}

func (r *BienestarRepository) Create(ctx context.Context, user *entity.BienestarUser) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		log.Printf("❌ Error crítico en la base: %v", err)
		return err
	}
	return nil
}

// FindByPhone busca por celular normalizado. La unicidad del celular se
// garantiza con lookup-before-create en el usecase, no con un índice único.
func (r *BienestarRepository) FindByPhone(ctx context.Context, phone string) (*entity.BienestarUser, error) {
	return r.findOne(ctx, bson.D{{Key: "phone", Value: phone}})
}

func (r *BienestarRepository) FindByID(ctx context.Context, id string) (*entity.BienestarUser, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *BienestarRepository) findOne(ctx context.Context, filter bson.D) (*entity.BienestarUser, error) {
	var user entity.BienestarUser
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByReferrer devuelve los referidos directos, más reciente primero.
func (r *BienestarRepository) FindByReferrer(ctx context.Context, userID string) ([]entity.BienestarUser, error) {
	filter := bson.D{{Key: "referred_by", Value: userID}}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []entity.BienestarUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BienestarRepository) Recent(ctx context.Context, limit int) ([]entity.BienestarUser, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []entity.BienestarUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *BienestarRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

func (r *BienestarRepository) Watch() (<-chan ChangeEvent, func(), error) {
	return watchCollection(r.coll, CollectionBienestar, mongo.Pipeline{})
}

// WatchReferrals emite solo las altas cuyo referred_by sea userID: es la
// vista en vivo del dashboard de embajador.
func (r *BienestarRepository) WatchReferrals(userID string) (<-chan ChangeEvent, func(), error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "fullDocument.referred_by", Value: userID},
		}}},
	}
	return watchCollection(r.coll, CollectionBienestar, pipeline)
}
