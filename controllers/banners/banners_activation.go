package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panditji-api/models"
)

// bannerCol is the slice of *mongo.Collection the activation sequence
// uses, narrowed so the orchestration can run against a fake in tests.
type bannerCol interface {
	UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
}

// resolveActive applies the banner default: active unless the payload
// says otherwise.
func resolveActive(isActive *bool) bool {
	return isActive == nil || *isActive
}

// deactivateOthers flips isActive off on every banner except the target.
// Pass NilObjectID when the target is not inserted yet.
func deactivateOthers(ctx context.Context, col bannerCol, except primitive.ObjectID) error {
	filter := bson.M{}
	if except != primitive.NilObjectID {
		filter = bson.M{"_id": bson.M{"$ne": except}}
	}
	_, err := col.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"isActive": false}})
	return err
}

// updateBanner applies set to the target banner and, when the update
// activates it, deactivates the rest afterwards. Target-first ordering
// means a missing id fails before any other banner is touched, so a
// failed call has no side effects and a successful activation always
// ends with exactly one active banner.
func updateBanner(ctx context.Context, col bannerCol, id primitive.ObjectID, set bson.M) (models.Banner, error) {
	var updated models.Banner
	err := col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return models.Banner{}, err
	}

	if active, ok := set["isActive"].(bool); ok && active {
		if err := deactivateOthers(ctx, col, id); err != nil {
			return models.Banner{}, err
		}
	}
	return updated, nil
}
