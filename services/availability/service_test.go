package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"janseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository for service tests.
type fakeAvailabilityRepo struct {
	configs map[string]*models.AvailabilityConfig
	err     error
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{configs: make(map[string]*models.AvailabilityConfig)}
}

func scopeKey(companyID, departmentID string) string {
	return companyID + "/" + departmentID
}

func (f *fakeAvailabilityRepo) GetOrCreate(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := scopeKey(companyID, departmentID)
	if cfg, ok := f.configs[key]; ok {
		return cfg, nil
	}
	cfg := models.NewDefaultAvailabilityConfig(companyID, departmentID)
	f.configs[key] = &cfg
	return &cfg, nil
}

func (f *fakeAvailabilityRepo) GetActive(ctx context.Context, companyID, departmentID string) (*models.AvailabilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.configs[scopeKey(companyID, departmentID)]
	if !ok || !cfg.IsActive {
		return nil, nil
	}
	return cfg, nil
}

func (f *fakeAvailabilityRepo) UpdateSettings(ctx context.Context, companyID, departmentID string, req models.UpdateAvailabilityRequest) (*models.AvailabilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, _ := f.GetOrCreate(ctx, companyID, departmentID)
	if req.WeeklySchedule != nil {
		cfg.WeeklySchedule = *req.WeeklySchedule
	}
	if req.MaxAdvanceBookingDays != nil {
		cfg.MaxAdvanceBookingDays = *req.MaxAdvanceBookingDays
	}
	if req.SlotDurationMinutes != nil {
		cfg.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.IsActive != nil {
		cfg.IsActive = *req.IsActive
	}
	return cfg, nil
}

func (f *fakeAvailabilityRepo) AddSpecialDate(ctx context.Context, companyID, departmentID string, sd models.SpecialDate) (*models.AvailabilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, _ := f.GetOrCreate(ctx, companyID, departmentID)
	cfg.SpecialDates = append(cfg.SpecialDates, sd)
	return cfg, nil
}

func (f *fakeAvailabilityRepo) RemoveSpecialDate(ctx context.Context, companyID, departmentID string, d time.Time) (*models.AvailabilityConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.configs[scopeKey(companyID, departmentID)]
	if !ok {
		return nil, nil
	}
	kept := cfg.SpecialDates[:0]
	for _, sd := range cfg.SpecialDates {
		if !sameCalendarDate(sd.Date, d) {
			kept = append(kept, sd)
		}
	}
	cfg.SpecialDates = kept
	return cfg, nil
}

func TestDefaultAvailabilityService_GetAvailableDates_NoConfig(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Repo: newFakeAvailabilityRepo(),
		Now:  func() time.Time { return date(2025, time.January, 1) },
	}

	dates, err := svc.GetAvailableDates(context.Background(), "CMP000042", "", 2025, 0)
	require.NoError(t, err)
	require.NotEmpty(t, dates)
	assert.Equal(t, "2025-01-01", dates[0].Date)
	assert.Equal(t, []string{"09:00-12:00", "14:00-17:00"}, dates[0].Slots)
}

func TestDefaultAvailabilityService_GetAvailableDates_UsesStoredConfig(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultAvailabilityService{
		Repo: repo,
		Now:  func() time.Time { return date(2025, time.January, 1) },
	}

	_, err := repo.GetOrCreate(context.Background(), "CMP000042", "")
	require.NoError(t, err)
	_, err = repo.AddSpecialDate(context.Background(), "CMP000042", "", models.SpecialDate{
		Date: date(2025, time.January, 6), IsAvailable: false, Name: "Office closure",
	})
	require.NoError(t, err)

	dates, err := svc.GetAvailableDates(context.Background(), "CMP000042", "", 2025, 0)
	require.NoError(t, err)
	assert.Nil(t, findDate(dates, "2025-01-06"))
	assert.NotNil(t, findDate(dates, "2025-01-13"))
}

func TestDefaultAvailabilityService_GetPublicSettings_DefaultsWhenAbsent(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: newFakeAvailabilityRepo()}

	cfg, err := svc.GetPublicSettings(context.Background(), "CMP000042", "")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "CMP000042", cfg.CompanyID)
	assert.Equal(t, models.DefaultMaxAdvanceBookingDays, cfg.MaxAdvanceBookingDays)
	require.NotNil(t, cfg.WeeklySchedule.Monday)
	assert.True(t, cfg.WeeklySchedule.Monday.IsAvailable)
	require.NotNil(t, cfg.WeeklySchedule.Sunday)
	assert.False(t, cfg.WeeklySchedule.Sunday.IsAvailable)
}

func TestDefaultAvailabilityService_ScopesAreIndependent(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := &DefaultAvailabilityService{Repo: repo}

	companyWide, err := svc.GetSettings(context.Background(), "CMP000042", "")
	require.NoError(t, err)
	departmental, err := svc.GetSettings(context.Background(), "CMP000042", "DEP000007")
	require.NoError(t, err)

	assert.NotEqual(t, companyWide.ID, departmental.ID)
	assert.Equal(t, "DEP000007", departmental.DepartmentID)
	assert.Empty(t, companyWide.DepartmentID)
}

func TestDefaultAvailabilityService_RepoErrorsWrapped(t *testing.T) {
	repoErr := errors.New("connection reset")
	svc := &DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{err: repoErr}}

	_, err := svc.GetAvailableDates(context.Background(), "CMP000042", "", 2025, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
