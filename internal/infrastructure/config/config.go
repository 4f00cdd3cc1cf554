package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=4000"`
	Env         string `env:"ENV,          default=development"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Upload  UploadConfig
}

type SessionConfig struct {
	CookieName string        `env:"SESSION_COOKIE_NAME, default=blog_session"`
	TTL        time.Duration `env:"SESSION_TTL,         default=24h"`
	// CookieSecure and CookieCrossSite are enabled together when the
	// frontend is served from a different origin over HTTPS.
	CookieSecure    bool `env:"SESSION_COOKIE_SECURE,     default=false"`
	CookieCrossSite bool `env:"SESSION_COOKIE_CROSS_SITE, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blog"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// UploadConfig selects the cover-image backend: "local" stores files on disk
// under Dir and serves them at /uploads, "s3" forwards them to an
// S3-compatible object store.
type UploadConfig struct {
	Backend string `env:"UPLOAD_BACKEND, default=local"`
	Dir     string `env:"UPLOAD_DIR,     default=uploads"`

	S3 S3Config
}

type S3Config struct {
	Region    string `env:"S3_REGION,     default=us-east-1"`
	Bucket    string `env:"S3_BUCKET,     default=blog-covers"`
	Folder    string `env:"S3_FOLDER,     default=covers"`
	AccessKey string `env:"S3_ACCESS_KEY"`
	SecretKey string `env:"S3_SECRET_KEY"`
	// Endpoint overrides the AWS endpoint for MinIO-style deployments.
	Endpoint string `env:"S3_ENDPOINT"`
	// PublicURL is the base under which stored objects are reachable.
	PublicURL string `env:"S3_PUBLIC_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
