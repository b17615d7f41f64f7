package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort            = 8080
	defaultSessionCapacity = 1024
)

// Config is the service configuration, read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - GIN_MODE (debug | release | test)
//   - LOG_LEVEL (default: info), LOG_FORMAT (json | console)
//   - CATALOG_PATH (optional YAML catalog replacing the built-in one)
//   - SESSION_CAPACITY (default: 1024)
//   - QUOTES_TABLE, PAYMENTS_TABLE
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_TEST_PAYER_EMAIL, MERCADOPAGO_TEST_PAYER_USER_ID
//   - PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK
type Config struct {
	Port              int
	GinMode           string
	LogLevel          string
	LogFormat         string
	CatalogPath       string
	SessionCapacity   int
	QuotesTable       string
	PaymentsTable     string
	MPAccessToken     string
	MPTestPayerEmail  string
	MPTestPayerUserID string
	PaymentMock       bool
}

func Load() Config {
	return Config{
		Port:              getenvInt("PORT", defaultPort),
		GinMode:           os.Getenv("GIN_MODE"),
		LogLevel:          GetenvDefault("LOG_LEVEL", "info"),
		LogFormat:         GetenvDefault("LOG_FORMAT", "json"),
		CatalogPath:       strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		SessionCapacity:   getenvInt("SESSION_CAPACITY", defaultSessionCapacity),
		QuotesTable:       GetenvDefault("QUOTES_TABLE", "quotes"),
		PaymentsTable:     GetenvDefault("PAYMENTS_TABLE", "payments"),
		MPAccessToken:     os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		MPTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MPTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentMock:       PaymentGatewayMockEnabled(),
	}
}

func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// PaymentGatewayMockEnabled reports whether payments skip Mercado Pago.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
