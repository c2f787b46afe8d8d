// File: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability collection.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: one config per (companyId, departmentId) scope.
		{
			Keys:    bson.D{{Key: "companyId", Value: 1}, {Key: "departmentId", Value: 1}},
			Options: options.Index().SetName("company_department_idx"),
		},
		{
			Keys:    bson.D{{Key: "companyId", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("company_active_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
