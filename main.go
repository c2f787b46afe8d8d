// File: janseva/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"janseva/config"
	"janseva/database"
	availabilityRepo "janseva/database/repository/availability"
	companyRepo "janseva/database/repository/company"
	"janseva/handlers"
	"janseva/middleware"
	"janseva/models"
	"janseva/routes"
	"janseva/services/availability"
	"janseva/services/notification"
	"janseva/services/webhook"
	"janseva/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	compRepo := companyRepo.NewMongoCompanyRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo: availRepo,
	}

	emailSender := notification.NewSendGridEmailSender(notification.EmailConfig{
		APIKey:    config.AppConfig.SendGridAPIKey,
		FromEmail: config.AppConfig.EmailFrom,
		FromName:  config.AppConfig.EmailFromName,
	})
	defer emailSender.Close()

	companyResolver := &webhook.MongoCompanyResolver{
		Repo: compRepo,
		Fallback: models.Company{
			CompanyID:      config.AppConfig.FallbackCompanyID,
			Name:           config.AppConfig.FallbackCompanyName,
			EnabledModules: []string{"GRIEVANCE", "APPOINTMENT"},
			WhatsAppConfig: &models.WhatsAppConfig{
				PhoneNumberID:     config.AppConfig.WhatsAppPhoneNumberID,
				AccessToken:       config.AppConfig.WhatsAppAccessToken,
				BusinessAccountID: config.AppConfig.WhatsAppBusinessAccountID,
			},
			IsActive: true,
		},
	}

	dedup := webhook.NewRedisMessageDeduplicator(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.MessageDedupTTLHours)*time.Hour,
	)

	var processor webhook.MessageProcessor = webhook.LogMessageProcessor{}
	if config.AppConfig.StaffNotifyEmail != "" {
		processor = &webhook.StaffAlertProcessor{
			Sender:     emailSender,
			StaffEmail: config.AppConfig.StaffNotifyEmail,
			StaffName:  config.AppConfig.StaffNotifyName,
		}
	}

	webhookService := &webhook.DefaultWebhookService{
		VerifyToken: config.AppConfig.WhatsAppVerifyToken,
		Dedup:       dedup,
		Companies:   companyResolver,
		Processor:   processor,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetAvailabilityHandler:       availabilityHandler.GetSettingsHandler,
		UpdateAvailabilityHandler:    availabilityHandler.UpdateSettingsHandler,
		AddSpecialDateHandler:        availabilityHandler.AddSpecialDateHandler,
		RemoveSpecialDateHandler:     availabilityHandler.RemoveSpecialDateHandler,
		GetPublicAvailabilityHandler: availabilityHandler.GetPublicSettingsHandler,
		GetAvailableDatesHandler:     availabilityHandler.GetAvailableDatesHandler,
		GetHolidaysHandler:           availabilityHandler.GetHolidaysHandler,

		VerifyWebhookHandler:  webhookHandler.VerifyWebhookHandler,
		ReceiveWebhookHandler: webhookHandler.ReceiveWebhookHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
