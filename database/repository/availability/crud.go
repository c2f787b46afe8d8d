// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"janseva/models"
)

// scopeFilter matches one tenant scope. An empty departmentID must match only
// documents without the field, so company-wide and department configs never
// shadow each other.
func scopeFilter(companyID, departmentID string) bson.M {
	filter := bson.M{"companyId": companyID}
	if departmentID != "" {
		filter["departmentId"] = departmentID
	} else {
		filter["departmentId"] = bson.M{"$exists": false}
	}
	return filter
}

func (r *mongoAvailabilityRepo) GetOrCreate(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cfg models.AvailabilityConfig
	err := r.coll.FindOne(ctx, scopeFilter(companyID, departmentID)).Decode(&cfg)
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	cfg = models.NewDefaultAvailabilityConfig(companyID, departmentID)
	if _, err := r.coll.InsertOne(ctx, cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoAvailabilityRepo) GetActive(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := scopeFilter(companyID, departmentID)
	filter["isActive"] = true

	var cfg models.AvailabilityConfig
	err := r.coll.FindOne(ctx, filter).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoAvailabilityRepo) UpdateSettings(ctx context.Context, companyID, departmentID string, req models.UpdateAvailabilityRequest) (*models.AvailabilityConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.WeeklySchedule != nil {
		set["weeklySchedule"] = req.WeeklySchedule
	}
	if req.SlotDurationMinutes != nil {
		set["slotDurationMinutes"] = *req.SlotDurationMinutes
	}
	if req.MaxAdvanceBookingDays != nil {
		set["maxAdvanceBookingDays"] = *req.MaxAdvanceBookingDays
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}

	return r.upsertAndReturn(ctx, companyID, departmentID, bson.M{"$set": set}, set)
}

func (r *mongoAvailabilityRepo) AddSpecialDate(ctx context.Context, companyID, departmentID string, sd models.SpecialDate) (*models.AvailabilityConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"specialDates": sd},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	return r.upsertAndReturn(ctx, companyID, departmentID, update, bson.M{"updatedAt": true, "specialDates": true})
}

func (r *mongoAvailabilityRepo) RemoveSpecialDate(ctx context.Context, companyID, departmentID string, date time.Time) (*models.AvailabilityConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	update := bson.M{
		"$pull": bson.M{"specialDates": bson.M{
			"date": bson.M{"$gte": dayStart, "$lt": dayEnd},
		}},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cfg models.AvailabilityConfig
	err := r.coll.FindOneAndUpdate(ctx, scopeFilter(companyID, departmentID), update, opts).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// upsertAndReturn applies an update to a scope, inserting a default document
// first when the scope has none. touched lists field keys already written by
// the update so the on-insert defaults never conflict with them.
func (r *mongoAvailabilityRepo) upsertAndReturn(ctx context.Context, companyID, departmentID string, update bson.M, touched bson.M) (*models.AvailabilityConfig, error) {
	defaults := models.NewDefaultAvailabilityConfig(companyID, departmentID)

	setOnInsert := bson.M{
		"id":        defaults.ID,
		"companyId": defaults.CompanyID,
		"createdAt": defaults.CreatedAt,
	}
	if departmentID != "" {
		setOnInsert["departmentId"] = departmentID
	}
	for key, value := range map[string]interface{}{
		"weeklySchedule":        defaults.WeeklySchedule,
		"specialDates":          defaults.SpecialDates,
		"slotDurationMinutes":   defaults.SlotDurationMinutes,
		"maxAdvanceBookingDays": defaults.MaxAdvanceBookingDays,
		"isActive":              defaults.IsActive,
	} {
		if _, ok := touched[key]; !ok {
			setOnInsert[key] = value
		}
	}
	update["$setOnInsert"] = setOnInsert

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var cfg models.AvailabilityConfig
	if err := r.coll.FindOneAndUpdate(ctx, scopeFilter(companyID, departmentID), update, opts).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
