package config

import (
	"fmt"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"log"
	"strings"
)

const (
	EmailProviderSMTP     = "smtp"
	EmailProviderSendGrid = "sendgrid"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"5000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, production

	LoggerLevel  string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text

	// Operator mailbox. Receives admin and contact notifications.
	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"smtp"` // smtp, sendgrid
	EmailUser     string `env:"EMAIL_USER"`
	EmailPass     string `env:"EMAIL_PASS"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort      string `env:"SMTP_PORT" envDefault:"587"`

	SendGridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `env:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `env:"SENDGRID_FROM_NAME" envDefault:"The Jar Café"`

	// WhatsApp confirmations are only sent when all three are set.
	TwilioAccountSID     string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `env:"TWILIO_AUTH_TOKEN"`
	TwilioWhatsAppNumber string `env:"TWILIO_WHATSAPP_NUMBER"`
	DefaultCountryCode   string `env:"DEFAULT_COUNTRY_CODE" envDefault:"91"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads an optional .env file and parses the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}
	return parse(env.Options{})
}

// FromMap parses configuration from the given variables only.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.EmailProvider = strings.ToLower(strings.TrimSpace(cfg.EmailProvider))
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.EmailUser
	}
	cfg.DefaultCountryCode = strings.TrimPrefix(strings.TrimSpace(cfg.DefaultCountryCode), "+")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.EmailProvider {
	case EmailProviderSMTP:
		if c.EmailUser == "" || c.EmailPass == "" {
			return fmt.Errorf("EMAIL_USER and EMAIL_PASS are required for the smtp provider")
		}
	case EmailProviderSendGrid:
		if c.SendGridAPIKey == "" || c.SendGridFromEmail == "" {
			return fmt.Errorf("SENDGRID_API_KEY and SENDGRID_FROM_EMAIL are required for the sendgrid provider")
		}
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER: %q", c.EmailProvider)
	}
	if c.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL (or EMAIL_USER) is required")
	}
	if c.DefaultCountryCode == "" {
		return fmt.Errorf("DEFAULT_COUNTRY_CODE must not be empty")
	}
	return nil
}

// WhatsAppEnabled reports whether the Twilio messaging channel is configured.
func (c Config) WhatsAppEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppNumber != ""
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
