package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ChangeEvent es una mutación observada en una colección, tal como la
// consumen el hub de websockets y las vistas en vivo.
type ChangeEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	Document   bson.M `json:"document,omitempty"`
}

// watchCollection abre un change stream y lo bombea por un canal. El cancel
// devuelto SIEMPRE debe llamarse al desmontar la vista que lo pidió: cierra
// el stream y el canal, no se filtran suscripciones entre navegaciones.
func watchCollection(coll *mongo.Collection, name string, pipeline mongo.Pipeline) (<-chan ChangeEvent, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := coll.Watch(ctx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	events := make(chan ChangeEvent)

	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change struct {
				OperationType string `bson:"operationType"`
				FullDocument  bson.M `bson:"fullDocument"`
			}
			if err := stream.Decode(&change); err != nil {
				log.Printf("⚠️ [%s] change stream decode: %v", name, err)
				continue
			}

			select {
			case events <- ChangeEvent{Collection: name, Action: change.OperationType, Document: change.FullDocument}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, cancel, nil
}
