// File: database/repository/company/interface.go
package companyRepo

import (
	"context"

	"janseva/database"
	"janseva/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CompanyRepository reads tenant records for webhook routing.
type CompanyRepository interface {
	// FindByPhoneNumberID returns the active company owning a WhatsApp phone
	// number id, or nil when no tenant matches.
	FindByPhoneNumberID(ctx context.Context, phoneNumberID string) (*models.Company, error)
	// FindAnyActive returns some active company, or nil when none exist.
	// Used as a legacy routing fallback for single-tenant deployments.
	FindAnyActive(ctx context.Context) (*models.Company, error)
	FindByCompanyID(ctx context.Context, companyID string) (*models.Company, error)
}

type mongoCompanyRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanyRepo constructs a new MongoDB CompanyRepository.
func NewMongoCompanyRepo() CompanyRepository {
	db := database.MongoClient.Database("janseva")
	return &mongoCompanyRepo{
		coll: db.Collection("companies"),
	}
}
