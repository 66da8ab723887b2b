package configs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectDB() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(C.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid mongodb configuration")
	}

	// An unreachable store is not fatal: public catalog reads degrade to
	// the seed-backed file store, so start anyway and let handlers fall
	// back per request.
	if err := client.Ping(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("mongodb unreachable, public reads will serve seed data")
		return client
	}

	log.Info().Str("db", C.MongoDBName).Msg("connected to mongodb")

	return client
}

var DB *mongo.Client = ConnectDB()

func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	collection := client.Database(C.MongoDBName).Collection(collectionName)
	return collection
}
