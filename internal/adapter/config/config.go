package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database    *Database
	HTTP        *HTTP
	Gateway     *Gateway
	Marketplace *Marketplace
	Storage     *Storage
	Broker      *Broker
	Redis       *Redis
	App         *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
	PublicURL  string `env:"PUBLIC_URL"`
}

// Gateway holds the CinetPay-shaped payment provider credentials.
type Gateway struct {
	BaseURL   string `env:"CINETPAY_BASE_URL" envDefault:"https://api-checkout.cinetpay.com"`
	APIKey    string `env:"CINETPAY_API_KEY"`
	SiteID    string `env:"CINETPAY_SITE_ID"`
	NotifyURL string `env:"CINETPAY_NOTIFY_URL"`
	ReturnURL string `env:"CINETPAY_RETURN_URL"`
	CancelURL string `env:"CINETPAY_CANCEL_URL"`
}

// Marketplace is the business configuration injected into the settlement
// engine and the entitlement ledger.
type Marketplace struct {
	CommissionRate      float64 `env:"COMMISSION_RATE" envDefault:"0.10"`
	MaxDownloadsDefault int     `env:"MAX_DOWNLOAD_ATTEMPTS" envDefault:"5"`
	LinkTTLMinutes      int     `env:"DOWNLOAD_LINK_EXPIRE_MINUTES" envDefault:"60"`
	RedirectTTLSeconds  int     `env:"DOWNLOAD_REDIRECT_EXPIRE_SECONDS" envDefault:"300"`
	MinWithdrawal       float64 `env:"MIN_WITHDRAWAL" envDefault:"5000"`
	Currency            string  `env:"CURRENCY" envDefault:"XOF"`
}

type Storage struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"product-files"`
	Secure    bool   `env:"MINIO_SECURE" envDefault:"false"`
}

type Broker struct {
	AMQPURL string `env:"AMQP_URL"`
}

type Redis struct {
	Addr                  string `env:"REDIS_ADDR"`
	DownloadLimit         int    `env:"DOWNLOAD_RATE_LIMIT" envDefault:"30"`
	DownloadWindowSeconds int    `env:"DOWNLOAD_RATE_WINDOW_SECONDS" envDefault:"60"`
}

func NewConfig() (*Config, error) {
	var db Database
	var httpConf HTTP
	var gateway Gateway
	var marketplace Marketplace
	var storage Storage
	var broker Broker
	var redis Redis
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&httpConf.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&httpConf.PublicURL, "u", `http://localhost:8080`, "Public base URL for download links")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&httpConf)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&marketplace)
	if err != nil {
		return nil, fmt.Errorf("error parsing marketplace config: %w", err)
	}
	err = env.Parse(&storage)
	if err != nil {
		return nil, fmt.Errorf("error parsing storage config: %w", err)
	}
	err = env.Parse(&broker)
	if err != nil {
		return nil, fmt.Errorf("error parsing broker config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:    &db,
		HTTP:        &httpConf,
		Gateway:     &gateway,
		Marketplace: &marketplace,
		Storage:     &storage,
		Broker:      &broker,
		Redis:       &redis,
		App:         &app,
	}

	return &config, nil
}
