package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	InternalToken   string
	CORSAllowOrigin string

	// Pricing policy, overridable per deployment.
	VATRate            float64
	TravelRatePerKm    int64
	TravelFreeRadiusKm float64

	// Contact notifications. An empty SMTPHost disables mail entirely.
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	AdminEmail   string
}

func MustLoad() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:           env("HTTP_ADDR", ":8080"),
		DatabaseURL:        mustEnv("DATABASE_URL"),
		InternalToken:      mustEnv("INTERNAL_TOKEN"),
		CORSAllowOrigin:    env("CORS_ALLOW_ORIGIN", "*"),
		VATRate:            envFloat("VAT_RATE", 0.19),
		TravelRatePerKm:    envInt64("TRAVEL_RATE_PER_KM", 300),
		TravelFreeRadiusKm: envFloat("TRAVEL_FREE_RADIUS_KM", 5),
		SMTPHost:           env("SMTP_HOST", ""),
		SMTPPort:           env("SMTP_PORT", "587"),
		SMTPUser:           env("SMTP_USER", ""),
		SMTPPassword:       env("SMTP_PASSWORD", ""),
		SMTPFrom:           env("SMTP_FROM", "no-reply@nf-demos.cl"),
		AdminEmail:         env("ADMIN_EMAIL", "fehu.developers@gmail.com"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func envFloat(k string, def float64) float64 {
	raw := os.Getenv(k)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("bad env %s=%q: %v", k, raw, err)
	}
	return v
}

func envInt64(k string, def int64) int64 {
	raw := os.Getenv(k)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("bad env %s=%q: %v", k, raw, err)
	}
	return v
}
