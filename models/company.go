package models

import "time"

// WhatsAppConfig holds a company's WhatsApp Business credentials.
type WhatsAppConfig struct {
	PhoneNumberID     string `bson:"phoneNumberId" json:"phoneNumberId"`
	AccessToken       string `bson:"accessToken" json:"-"`
	BusinessAccountID string `bson:"businessAccountId" json:"businessAccountId"`
}

// Company is a tenant of the portal (a municipal body or one of its offices).
type Company struct {
	ID             string          `bson:"id" json:"id"`
	CompanyID      string          `bson:"companyId" json:"companyId"` // human-facing code, e.g. "CMP000001"
	Name           string          `bson:"name" json:"name"`
	EnabledModules []string        `bson:"enabledModules" json:"enabledModules"` // e.g. ["GRIEVANCE", "APPOINTMENT"]
	WhatsAppConfig *WhatsAppConfig `bson:"whatsappConfig,omitempty" json:"whatsappConfig,omitempty"`
	IsActive       bool            `bson:"isActive" json:"isActive"`
	IsDeleted      bool            `bson:"isDeleted" json:"isDeleted"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}
