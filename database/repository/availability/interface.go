// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"time"

	"janseva/database"
	"janseva/models"
	"janseva/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AvailabilityRepository persists per-tenant scheduling configuration.
// The scope key is (companyID, departmentID); departmentID is empty for the
// company-wide document.
type AvailabilityRepository interface {
	// GetOrCreate returns the config for a scope, creating the default
	// document on first read.
	GetOrCreate(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error)
	// GetActive returns the active config for a scope, or nil when none
	// exists (callers fall back to implicit defaults).
	GetActive(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error)
	UpdateSettings(ctx context.Context, companyID, departmentID string, req models.UpdateAvailabilityRequest) (*models.AvailabilityConfig, error)
	AddSpecialDate(ctx context.Context, companyID, departmentID string, sd models.SpecialDate) (*models.AvailabilityConfig, error)
	// RemoveSpecialDate pulls every override whose stored date falls within
	// the given calendar date, tolerating time components on stored dates.
	RemoveSpecialDate(ctx context.Context, companyID, departmentID string, date time.Time) (*models.AvailabilityConfig, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("janseva")
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("appointment_availability"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to ensure availability indexes", zap.Error(err))
	}
	return repo
}
