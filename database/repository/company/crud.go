// File: database/repository/company/crud.go
package companyRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"janseva/models"
)

func (r *mongoCompanyRepo) FindByPhoneNumberID(ctx context.Context, phoneNumberID string) (*models.Company, error) {
	filter := bson.M{
		"whatsappConfig.phoneNumberId": phoneNumberID,
		"isActive":                     true,
		"isDeleted":                    false,
	}
	return r.findOne(ctx, filter)
}

func (r *mongoCompanyRepo) FindAnyActive(ctx context.Context) (*models.Company, error) {
	filter := bson.M{"isActive": true, "isDeleted": false}
	return r.findOne(ctx, filter)
}

func (r *mongoCompanyRepo) FindByCompanyID(ctx context.Context, companyID string) (*models.Company, error) {
	filter := bson.M{"companyId": companyID, "isDeleted": false}
	return r.findOne(ctx, filter)
}

func (r *mongoCompanyRepo) findOne(ctx context.Context, filter bson.M) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var company models.Company
	err := r.coll.FindOne(ctx, filter).Decode(&company)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}
