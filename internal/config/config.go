package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Postgres Postgres
	RabbitMQ RabbitMQ
	Pix      Pix
	CardPay  CardPay
	WhatsApp WhatsApp
	Mail     Mail
}

type HTTP struct {
	Port           int      `env:"HTTP_PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" envDefault:"*"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"DATABASE_URL"`
	MaxConn int    `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type RabbitMQ struct {
	User string `env:"RABBITMQ_USER" envDefault:"guest"`
	Pass string `env:"RABBITMQ_PASS" envDefault:"guest"`
	Host string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	Port string `env:"RABBITMQ_PORT" envDefault:"5672"`
}

type Pix struct {
	BaseURL string `env:"PIX_GATEWAY_URL"`
	APIKey  string `env:"PIX_GATEWAY_API_KEY"`
	PixKey  string `env:"PIX_RECEIVER_KEY" envDefault:"contato@anaconecta.com.br"`
}

type CardPay struct {
	BaseURL                  string `env:"CARD_GATEWAY_URL"`
	APIKey                   string `env:"CARD_GATEWAY_API_KEY"`
	MaxInstallments          int    `env:"CARD_MAX_INSTALLMENTS" envDefault:"6"`
	InterestFreeInstallments int    `env:"CARD_INTEREST_FREE_INSTALLMENTS" envDefault:"3"`
}

type WhatsApp struct {
	AccessToken string `env:"WHATSAPP_ACCESS_TOKEN"`
	PhoneID     string `env:"WHATSAPP_PHONE_ID"`
	TemplateID  string `env:"WHATSAPP_TEMPLATE_ID" envDefault:"conecta_notification"`
}

type Mail struct {
	Host string `env:"MAIL_HOST"`
	Port int    `env:"MAIL_PORT" envDefault:"587"`
	User string `env:"MAIL_USER"`
	Pass string `env:"MAIL_PASS"`
	From string `env:"MAIL_FROM" envDefault:"nao-responda@anaconecta.com.br"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
