package config

import (
	"os"
	"strconv"
)

// Config reúne tudo que vem do ambiente. godotenv.Load roda no main antes
// de Load, então um .env local também alimenta isso.
type Config struct {
	Port        string
	DatabaseURL string
	Migrate     bool
	CORSOrigin  string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string
	MailNotifyTo string
}

func Load() Config {
	mailPort, _ := strconv.Atoi(envOr("MAIL_PORT", "587"))

	return Config{
		Port:        envOr("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Migrate:     os.Getenv("DB_MIGRATE") == "true",
		CORSOrigin:  envOr("CORS_ORIGIN", "http://localhost:5173"),

		RabbitUser: envOr("RABBITMQ_USER", "guest"),
		RabbitPass: envOr("RABBITMQ_PASS", "guest"),
		RabbitHost: os.Getenv("RABBITMQ_HOST"), // vazio = fila desligada
		RabbitPort: envOr("RABBITMQ_PORT", "5672"),

		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     mailPort,
		MailUser:     os.Getenv("MAIL_USER"),
		MailPass:     os.Getenv("MAIL_PASS"),
		MailNotifyTo: envOr("MAIL_NOTIFY_TO", "equipe@casaflor.com.br"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
