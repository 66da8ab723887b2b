package controllers

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panditji-api/models"
)

// fakeBannerCol applies the two activation queries against an in-memory
// banner list.
type fakeBannerCol struct {
	banners         []models.Banner
	deactivateCalls int
}

func (f *fakeBannerCol) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.deactivateCalls++

	except := primitive.NilObjectID
	if m, ok := filter.(bson.M); ok {
		if cond, ok := m["_id"].(bson.M); ok {
			except, _ = cond["$ne"].(primitive.ObjectID)
		}
	}

	var modified int64
	for i := range f.banners {
		if f.banners[i].ID == except {
			continue
		}
		if f.banners[i].IsActive {
			f.banners[i].IsActive = false
			modified++
		}
	}
	return &mongo.UpdateResult{MatchedCount: int64(len(f.banners)), ModifiedCount: modified}, nil
}

func (f *fakeBannerCol) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	id, _ := filter.(bson.M)["_id"].(primitive.ObjectID)
	set, _ := update.(bson.M)["$set"].(bson.M)

	for i := range f.banners {
		if f.banners[i].ID != id {
			continue
		}
		if active, ok := set["isActive"].(bool); ok {
			f.banners[i].IsActive = active
		}
		if title, ok := set["title"].(string); ok {
			f.banners[i].Title = title
		}
		return mongo.NewSingleResultFromDocument(f.banners[i], nil, nil)
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func activeBanners(banners []models.Banner) []models.Banner {
	var active []models.Banner
	for _, b := range banners {
		if b.IsActive {
			active = append(active, b)
		}
	}
	return active
}

func TestResolveActive(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	tests := []struct {
		name     string
		isActive *bool
		want     bool
	}{
		{"omitted defaults to active", nil, true},
		{"explicit true", boolPtr(true), true},
		{"explicit false", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveActive(tt.isActive); got != tt.want {
				t.Errorf("resolveActive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateActivationDeactivatesPrior(t *testing.T) {
	prior := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "diwali.png", IsActive: true}
	idle := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "holi.png"}
	fake := &fakeBannerCol{banners: []models.Banner{prior, idle}}

	// The create path: isActive omitted resolves to true and still
	// deactivates everything before the insert.
	if !resolveActive(nil) {
		t.Fatal("omitted isActive should resolve to active")
	}
	if err := deactivateOthers(context.Background(), fake, primitive.NilObjectID); err != nil {
		t.Fatalf("deactivateOthers: %v", err)
	}
	created := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "navratri.png", IsActive: true}
	fake.banners = append(fake.banners, created)

	active := activeBanners(fake.banners)
	if len(active) != 1 {
		t.Fatalf("got %d active banners, want exactly 1", len(active))
	}
	if active[0].ID != created.ID {
		t.Errorf("active banner = %s, want the created one", active[0].ImageUrl)
	}
	if fake.banners[0].IsActive {
		t.Error("prior active banner should have been deactivated")
	}
}

func TestUpdateBannerActivatesTarget(t *testing.T) {
	prior := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "diwali.png", IsActive: true}
	target := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "holi.png"}
	fake := &fakeBannerCol{banners: []models.Banner{prior, target}}

	updated, err := updateBanner(context.Background(), fake, target.ID, bson.M{"isActive": true})
	if err != nil {
		t.Fatalf("updateBanner: %v", err)
	}
	if !updated.IsActive || updated.ID != target.ID {
		t.Errorf("returned banner = %+v, want target active", updated)
	}

	active := activeBanners(fake.banners)
	if len(active) != 1 {
		t.Fatalf("got %d active banners, want exactly 1", len(active))
	}
	if active[0].ID != target.ID {
		t.Errorf("active banner = %s, want %s", active[0].ImageUrl, target.ImageUrl)
	}
}

func TestUpdateBannerMissingTargetTouchesNothing(t *testing.T) {
	prior := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "diwali.png", IsActive: true}
	fake := &fakeBannerCol{banners: []models.Banner{prior}}

	_, err := updateBanner(context.Background(), fake, primitive.NewObjectID(), bson.M{"isActive": true})
	if err != mongo.ErrNoDocuments {
		t.Fatalf("err = %v, want mongo.ErrNoDocuments", err)
	}
	if fake.deactivateCalls != 0 {
		t.Errorf("deactivation ran %d times on a missing target, want 0", fake.deactivateCalls)
	}
	if !fake.banners[0].IsActive {
		t.Error("existing active banner should be untouched by a failed update")
	}
}

func TestUpdateBannerDeactivateOnlyTouchesTarget(t *testing.T) {
	target := models.Banner{ID: primitive.NewObjectID(), ImageUrl: "diwali.png", IsActive: true}
	fake := &fakeBannerCol{banners: []models.Banner{target}}

	updated, err := updateBanner(context.Background(), fake, target.ID, bson.M{"isActive": false})
	if err != nil {
		t.Fatalf("updateBanner: %v", err)
	}
	if updated.IsActive {
		t.Error("target should be inactive after the update")
	}
	if fake.deactivateCalls != 0 {
		t.Errorf("deactivation ran %d times for isActive=false, want 0", fake.deactivateCalls)
	}
}
