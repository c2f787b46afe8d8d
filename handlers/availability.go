package handlers

import (
	"net/http"
	"strconv"
	"time"

	"janseva/models"
	availabilitySvc "janseva/services/availability"
	"janseva/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves scheduling configuration and computed dates.
type AvailabilityHandler struct {
	Service availabilitySvc.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availabilitySvc.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetSettingsHandler returns (creating on first read) the settings for a scope.
func (h *AvailabilityHandler) GetSettingsHandler(c *gin.Context) {
	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID is required"})
		return
	}

	cfg, err := h.Service.GetSettings(c.Request.Context(), companyID, c.Query("departmentId"))
	if err != nil {
		utils.GetLogger().Error("Failed to fetch availability settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch availability settings", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": cfg})
}

// GetPublicSettingsHandler returns active settings (or defaults) for the chatbot.
func (h *AvailabilityHandler) GetPublicSettingsHandler(c *gin.Context) {
	companyID := c.Param("companyID")

	cfg, err := h.Service.GetPublicSettings(c.Request.Context(), companyID, c.Query("departmentId"))
	if err != nil {
		utils.GetLogger().Error("Failed to fetch public availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch public availability", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": cfg})
}

// GetAvailableDatesHandler returns the bookable dates of a month for a tenant.
func (h *AvailabilityHandler) GetAvailableDatesHandler(c *gin.Context) {
	companyID := c.Param("companyID")
	now := time.Now()

	// Month is 0-based to match the dashboard calendar widget.
	month := int(now.Month()) - 1
	if m, err := strconv.Atoi(c.Query("month")); err == nil {
		month = m
	}
	year := now.Year()
	if y, err := strconv.Atoi(c.Query("year")); err == nil {
		year = y
	}

	dates, err := h.Service.GetAvailableDates(c.Request.Context(), companyID, c.Query("departmentId"), year, month)
	if err != nil {
		utils.GetLogger().Error("Failed to compute available dates", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available dates", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableDates": dates})
}

// UpdateSettingsHandler upserts weekly schedule and limits for a scope.
func (h *AvailabilityHandler) UpdateSettingsHandler(c *gin.Context) {
	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID is required"})
		return
	}

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	cfg, err := h.Service.UpdateSettings(c.Request.Context(), companyID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to update availability settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability settings", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": cfg})
}

// AddSpecialDateHandler appends a holiday or custom one-off schedule.
func (h *AvailabilityHandler) AddSpecialDateHandler(c *gin.Context) {
	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID is required"})
		return
	}

	var req models.AddSpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	cfg, err := h.Service.AddSpecialDate(c.Request.Context(), companyID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to add special date", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add special date", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": cfg})
}

// RemoveSpecialDateHandler removes overrides matching a calendar date.
func (h *AvailabilityHandler) RemoveSpecialDateHandler(c *gin.Context) {
	companyID := c.Query("companyId")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company ID is required"})
		return
	}

	var req models.RemoveSpecialDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	cfg, err := h.Service.RemoveSpecialDate(c.Request.Context(), companyID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to remove special date", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove special date", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": cfg})
}

// GetHolidaysHandler returns the static holiday catalog for a year.
func (h *AvailabilityHandler) GetHolidaysHandler(c *gin.Context) {
	year := time.Now().Year()
	if y, err := strconv.Atoi(c.Param("year")); err == nil && y > 0 {
		year = y
	}

	c.JSON(http.StatusOK, gin.H{
		"holidays": availabilitySvc.Holidays(year),
		"year":     year,
	})
}
