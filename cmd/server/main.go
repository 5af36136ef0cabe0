package main

import (
	"go.uber.org/zap"
	"jarcafe/internal/api"
	"jarcafe/internal/config"
	"jarcafe/internal/logger"
	"jarcafe/internal/service"
	"log"
	"net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl := logger.New(cfg)
	defer zl.Sync()

	var mailer service.Mailer
	switch cfg.EmailProvider {
	case config.EmailProviderSendGrid:
		mailer = service.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName)
	default:
		mailer = service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	}

	var messenger service.Messenger
	if cfg.WhatsAppEnabled() {
		messenger = service.NewTwilioMessenger(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber)
	} else {
		zl.Warn("Twilio credentials not set, WhatsApp confirmations disabled")
	}

	sender := service.NewSenderService(mailer, messenger, cfg.AdminEmail, cfg.DefaultCountryCode)
	dispatcher := service.NewDispatcher(zl)

	reservationHandler := api.NewReservationHandler(
		service.NewReservationService(sender, dispatcher, zl),
		cfg.WhatsAppEnabled(),
		zl,
	)
	contactHandler := api.NewContactHandler(service.NewContactService(sender, dispatcher, zl), zl)

	router := api.NewRouter(reservationHandler, contactHandler, cfg.CORSAllowedOrigins, zl)

	zl.Info("Server running",
		zap.String("port", cfg.Port),
		zap.String("email_provider", cfg.EmailProvider),
		zap.Bool("whatsapp", cfg.WhatsAppEnabled()),
	)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		zl.Fatal("Server stopped", zap.Error(err))
	}
}
