package webhook

import (
	"context"

	companyRepo "janseva/database/repository/company"
	"janseva/models"
	"janseva/utils"

	"go.uber.org/zap"
)

// CompanyResolver maps inbound webhook metadata to the tenant that owns the
// receiving WhatsApp number. Implementations decide the fallback policy.
type CompanyResolver interface {
	Resolve(ctx context.Context, metadata models.WebhookMetadata) *models.Company
}

// MongoCompanyResolver resolves tenants from the companies collection:
// phone-number-id match first, then any active company (single-tenant
// deployments predating per-company WhatsApp config), then the fallback
// company supplied at construction. Resolve never returns nil.
type MongoCompanyResolver struct {
	Repo     companyRepo.CompanyRepository
	Fallback models.Company
}

func (r *MongoCompanyResolver) Resolve(ctx context.Context, metadata models.WebhookMetadata) *models.Company {
	logger := utils.GetLogger()

	phoneNumberID := metadata.PhoneNumberID
	if phoneNumberID == "" {
		logger.Warn("No phone number ID in webhook metadata, using fallback company")
		return r.fallbackCompany(ctx)
	}

	company, err := r.Repo.FindByPhoneNumberID(ctx, phoneNumberID)
	if err != nil {
		logger.Error("Company lookup by phone number ID failed",
			zap.String("phoneNumberId", phoneNumberID), zap.Error(err))
	}
	if company != nil {
		return company
	}

	company, err = r.Repo.FindAnyActive(ctx)
	if err != nil {
		logger.Error("Fallback company lookup failed", zap.Error(err))
	}
	if company != nil {
		logger.Warn("No company matches phone number ID, routing to first active company",
			zap.String("phoneNumberId", phoneNumberID),
			zap.String("companyId", company.CompanyID))
		if company.WhatsAppConfig == nil {
			company.WhatsAppConfig = &models.WhatsAppConfig{}
		}
		company.WhatsAppConfig.PhoneNumberID = phoneNumberID
		return company
	}

	logger.Warn("No active company found, using fallback company",
		zap.String("phoneNumberId", phoneNumberID))
	fallback := r.fallbackCompany(ctx)
	if fallback.WhatsAppConfig == nil {
		fallback.WhatsAppConfig = &models.WhatsAppConfig{}
	}
	if fallback.WhatsAppConfig.PhoneNumberID == "" {
		fallback.WhatsAppConfig.PhoneNumberID = phoneNumberID
	}
	return fallback
}

// fallbackCompany prefers the stored document for the configured fallback
// company id over the injected literal, so dashboard edits to the fallback
// tenant take effect without a restart.
func (r *MongoCompanyResolver) fallbackCompany(ctx context.Context) *models.Company {
	if r.Fallback.CompanyID != "" {
		stored, err := r.Repo.FindByCompanyID(ctx, r.Fallback.CompanyID)
		if err != nil {
			utils.GetLogger().Error("Fallback company lookup by id failed",
				zap.String("companyId", r.Fallback.CompanyID), zap.Error(err))
		}
		if stored != nil {
			return stored
		}
	}
	fallback := r.Fallback
	return &fallback
}
