package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	EmailJS   EmailJSConfig
	MailRelay MailRelayConfig
	WhatsApp  WhatsAppConfig
	Pricing   PricingConfig
	Company   CompanyConfig
}

type ServerConfig struct {
	Address      string
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
	IdleTimeout  time.Duration
}

// EmailJSConfig holds the three credential-like identifiers the
// transactional email collaborator needs.
type EmailJSConfig struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

type MailRelayConfig struct {
	URL string
}

type WhatsAppConfig struct {
	Number string
}

type PricingConfig struct {
	EURToXOF float64
}

type CompanyConfig struct {
	Name string
}

func NewConfig() (*Config, error) {
	serverCfg, err := newServerConfig()
	if err != nil {
		return nil, fmt.Errorf("server config error: %w", err)
	}

	pricingCfg, err := newPricingConfig()
	if err != nil {
		return nil, fmt.Errorf("pricing config error: %w", err)
	}

	return &Config{
		Server:    serverCfg,
		EmailJS:   newEmailJSConfig(),
		MailRelay: MailRelayConfig{URL: getEnvOrDefault("MAIL_RELAY_URL", "")},
		WhatsApp:  WhatsAppConfig{Number: getEnvOrDefault("WHATSAPP_NUMBER", "221783083535")},
		Pricing:   pricingCfg,
		Company:   CompanyConfig{Name: getEnvOrDefault("COMPANY_NAME", "LRAD Tourisme")},
	}, nil
}

func newServerConfig() (ServerConfig, error) {
	writeTimeout, err := getDurationFromEnv("SERVER_WRITE_TIMEOUT", "15s")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("write timeout parse error: %w", err)
	}

	readTimeout, err := getDurationFromEnv("SERVER_READ_TIMEOUT", "15s")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("read timeout parse error: %w", err)
	}

	idleTimeout, err := getDurationFromEnv("SERVER_IDLE_TIMEOUT", "30s")
	if err != nil {
		return ServerConfig{}, fmt.Errorf("idle timeout parse error: %w", err)
	}

	return ServerConfig{
		Address:      getEnvOrDefault("SERVER_ADDRESS", ":5000"),
		WriteTimeout: writeTimeout,
		ReadTimeout:  readTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func newEmailJSConfig() EmailJSConfig {
	return EmailJSConfig{
		BaseURL:    getEnvOrDefault("EMAILJS_URL", "https://api.emailjs.com"),
		ServiceID:  getEnvOrDefault("EMAILJS_SERVICE_ID", ""),
		TemplateID: getEnvOrDefault("EMAILJS_TEMPLATE_ID", ""),
		PublicKey:  getEnvOrDefault("EMAILJS_PUBLIC_KEY", ""),
	}
}

func newPricingConfig() (PricingConfig, error) {
	rate, err := strconv.ParseFloat(getEnvOrDefault("PRICING_EUR_XOF_RATE", "655.957"), 64)
	if err != nil {
		return PricingConfig{}, fmt.Errorf("exchange rate parse error: %w", err)
	}
	if rate <= 0 {
		return PricingConfig{}, fmt.Errorf("exchange rate must be positive, got %v", rate)
	}
	return PricingConfig{EURToXOF: rate}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationFromEnv(key, defaultValue string) (time.Duration, error) {
	return time.ParseDuration(getEnvOrDefault(key, defaultValue))
}
