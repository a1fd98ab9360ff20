// internal/seed/seed.go
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"flowius-manage-api-server/config"
	"flowius-manage-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Load fetches the startup asset collection from the configured source.
// Mutations never flow back: the store owns the data for the rest of the
// session.
func Load(ctx context.Context, cfg config.Config) ([]models.Asset, error) {
	switch cfg.Seed.Source {
	case "", "file":
		return FromFile(cfg.Seed.File)
	case "mongo":
		return FromMongo(ctx, cfg.Mongo)
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Seed.Source)
	}
}

// FromFile reads a JSON array of assets.
func FromFile(path string) ([]models.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var assets []models.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return Normalize(assets)
}

// FromMongo reads the assets collection once at startup.
func FromMongo(ctx context.Context, cfg config.MongoConfig) ([]models.Asset, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	defer client.Disconnect(ctx)

	collection := client.Database(cfg.DBName).Collection(cfg.Collection)
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query seed assets: %w", err)
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, fmt.Errorf("decode seed assets: %w", err)
	}
	return Normalize(assets)
}

// Normalize forces each asset's geometry type from the type catalog so the
// type→geometry invariant holds from seed time on, then validates geometry
// arity and id uniqueness.
func Normalize(assets []models.Asset) ([]models.Asset, error) {
	seen := make(map[string]bool, len(assets))
	for i := range assets {
		a := &assets[i]
		if a.ID == "" {
			return nil, fmt.Errorf("seed asset %d has no id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate seed asset id %s", a.ID)
		}
		seen[a.ID] = true

		a.GeometryType = models.GeometryFor(a.Type)
		if a.MaintenanceHistory == nil {
			a.MaintenanceHistory = []models.MaintenanceRecord{}
		}
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}
	return assets, nil
}
