package availability

import (
	"context"

	"janseva/models"
)

// AvailabilityService exposes scheduling configuration and computed
// availability to the dashboard and the chatbot.
type AvailabilityService interface {
	// GetSettings returns the config for a scope, creating the default
	// document on first access (dashboard read path).
	GetSettings(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error)
	// GetPublicSettings returns the active config for a scope, or an
	// unpersisted default when none exists (chatbot read path).
	GetPublicSettings(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error)
	UpdateSettings(ctx context.Context, companyID string, req models.UpdateAvailabilityRequest) (*models.AvailabilityConfig, error)
	AddSpecialDate(ctx context.Context, companyID string, req models.AddSpecialDateRequest) (*models.AvailabilityConfig, error)
	RemoveSpecialDate(ctx context.Context, companyID string, req models.RemoveSpecialDateRequest) (*models.AvailabilityConfig, error)
	// GetAvailableDates runs the resolver for a calendar month (0-based).
	GetAvailableDates(ctx context.Context, companyID, departmentID string, year, month int) ([]models.AvailableDate, error)
}
