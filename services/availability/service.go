package availability

import (
	"context"
	"fmt"
	"time"

	availabilityRepo "janseva/database/repository/availability"
	"janseva/models"
	"janseva/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService is the production AvailabilityService.
// Now is injectable so the advance-window anchor can be pinned in tests;
// nil means the wall clock.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
	Now  func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultAvailabilityService) GetSettings(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error) {
	cfg, err := s.Repo.GetOrCreate(ctx, companyID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability settings: %w", err)
	}
	return cfg, nil
}

func (s *DefaultAvailabilityService) GetPublicSettings(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error) {
	cfg, err := s.Repo.GetActive(ctx, companyID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public availability: %w", err)
	}
	if cfg == nil {
		// Nothing configured for this scope; serve the defaults without
		// persisting them.
		defaults := models.NewDefaultAvailabilityConfig(companyID, departmentID)
		return &defaults, nil
	}
	return cfg, nil
}

func (s *DefaultAvailabilityService) UpdateSettings(ctx context.Context, companyID string, req models.UpdateAvailabilityRequest) (*models.AvailabilityConfig, error) {
	cfg, err := s.Repo.UpdateSettings(ctx, companyID, req.DepartmentID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update availability settings: %w", err)
	}
	utils.GetLogger().Info("Availability settings updated",
		zap.String("companyId", companyID), zap.String("departmentId", req.DepartmentID))
	return cfg, nil
}

func (s *DefaultAvailabilityService) AddSpecialDate(ctx context.Context, companyID string, req models.AddSpecialDateRequest) (*models.AvailabilityConfig, error) {
	cfg, err := s.Repo.AddSpecialDate(ctx, companyID, req.DepartmentID, req.SpecialDate)
	if err != nil {
		return nil, fmt.Errorf("failed to add special date: %w", err)
	}
	utils.GetLogger().Info("Special date added",
		zap.String("companyId", companyID),
		zap.Time("date", req.SpecialDate.Date),
		zap.Bool("isAvailable", req.SpecialDate.IsAvailable))
	return cfg, nil
}

func (s *DefaultAvailabilityService) RemoveSpecialDate(ctx context.Context, companyID string, req models.RemoveSpecialDateRequest) (*models.AvailabilityConfig, error) {
	cfg, err := s.Repo.RemoveSpecialDate(ctx, companyID, req.DepartmentID, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to remove special date: %w", err)
	}
	utils.GetLogger().Info("Special date removed",
		zap.String("companyId", companyID), zap.Time("date", req.Date))
	return cfg, nil
}

func (s *DefaultAvailabilityService) GetAvailableDates(ctx context.Context, companyID, departmentID string, year, month int) ([]models.AvailableDate, error) {
	cfg, err := s.Repo.GetActive(ctx, companyID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for date computation: %w", err)
	}
	// cfg may be nil here; the resolver falls back to the default template.
	return ComputeAvailableDates(cfg, year, month, s.now()), nil
}
