package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	JWT struct {
		SecretKey string
		Expire    int // seconds
	}
	CORS struct {
		AllowDomains string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
	}
	Google struct {
		ClientID     string
		TokenInfoURL string
	}
	Downloader struct {
		VideoAPIURL string
		TrackAPIURL string
		APIKey      string
	}
	Spotify struct {
		ClientID     string
		ClientSecret string
		TokenURL     string
		APIURL       string
	}
	AI struct {
		APIURL string
		APIKey string
		Model  string
	}
	Grafana struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Environment struct {
		Mode string
	}
	DomainName string
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		config.JWT.Expire, _ = strconv.Atoi(val)
	}
	if config.JWT.Expire == 0 {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")
	if config.Redis.Port == "" {
		config.Redis.Port = "6379"
	}
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	// RabbitMQ
	config.RabbitMQ.Host = os.Getenv("RABBITMQ_HOST")
	if config.RabbitMQ.Host == "" {
		config.RabbitMQ.Host = "localhost"
	}
	config.RabbitMQ.Port = os.Getenv("RABBITMQ_PORT")
	if config.RabbitMQ.Port == "" {
		config.RabbitMQ.Port = "5672"
	}
	config.RabbitMQ.Username = os.Getenv("RABBITMQ_USER")
	if config.RabbitMQ.Username == "" {
		config.RabbitMQ.Username = "guest"
	}
	config.RabbitMQ.Password = os.Getenv("RABBITMQ_PASSWORD")
	if config.RabbitMQ.Password == "" {
		config.RabbitMQ.Password = "guest"
	}

	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	config.Minio.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	config.Minio.Bucket = os.Getenv("MINIO_BUCKET")
	if config.Minio.Bucket == "" {
		config.Minio.Bucket = "synify-media"
	}
	config.Minio.UseSSL = strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true")

	config.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	config.Google.TokenInfoURL = os.Getenv("GOOGLE_TOKENINFO_URL")
	if config.Google.TokenInfoURL == "" {
		config.Google.TokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	}

	config.Downloader.VideoAPIURL = os.Getenv("DOWNLOADER_VIDEO_API_URL")
	config.Downloader.TrackAPIURL = os.Getenv("DOWNLOADER_TRACK_API_URL")
	config.Downloader.APIKey = os.Getenv("DOWNLOADER_API_KEY")

	config.Spotify.ClientID = os.Getenv("SPOTIFY_CLIENT_ID")
	config.Spotify.ClientSecret = os.Getenv("SPOTIFY_CLIENT_SECRET")
	config.Spotify.TokenURL = os.Getenv("SPOTIFY_TOKEN_URL")
	if config.Spotify.TokenURL == "" {
		config.Spotify.TokenURL = "https://accounts.spotify.com/api/token"
	}
	config.Spotify.APIURL = os.Getenv("SPOTIFY_API_URL")
	if config.Spotify.APIURL == "" {
		config.Spotify.APIURL = "https://api.spotify.com/v1"
	}

	config.AI.APIURL = os.Getenv("AI_API_URL")
	config.AI.APIKey = os.Getenv("AI_API_KEY")
	config.AI.Model = os.Getenv("AI_MODEL")
	if config.AI.Model == "" {
		config.AI.Model = "gpt-4o-mini"
	}

	// Grafana/OpenTelemetry
	grafanaEndpoint := os.Getenv("GRAFANA_OTLP_ENDPOINT")
	grafanaEndpoint = strings.TrimPrefix(grafanaEndpoint, "https://")
	grafanaEndpoint = strings.TrimPrefix(grafanaEndpoint, "http://")
	config.Grafana.OTLPEndpoint = grafanaEndpoint
	config.Grafana.ServiceName = os.Getenv("SERVICE_NAME")
	if config.Grafana.ServiceName == "" {
		config.Grafana.ServiceName = "synify-be"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	config.DomainName = os.Getenv("DOMAIN_NAME")
	if config.DomainName == "" {
		config.DomainName = "localhost:8080"
	}

	return &config
}
