package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "KTAP"

type Server struct {
	Addr          string
	Mongo         Mongo
	MySQL         MySQL
	Redis         Redis
	Session       Session
	CORS          CORS
	RateLimit     RateLimit
	Icons         Icons
	SecureCookies bool
}

type Mongo struct {
	URI      string
	Database string
}

type MySQL struct {
	DSN string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Session struct {
	// Store is "redis" or "mysql".
	Store          string
	TTL            time.Duration
	PrivateKeyPath string
	PublicKeyPath  string
}

type CORS struct {
	Origins []string
}

type RateLimit struct {
	RPS   float64
	Burst int
}

type Icons struct {
	Bucket string
	Region string
	TTL    time.Duration
}

type Client struct {
	BaseURL string
	Timeout time.Duration
	// Email and Password sign the CLI in before a command that needs a user.
	Email    string
	Password string
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func setServerDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8000")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "ktap")
	v.SetDefault("mysql.dsn", "root:love@tcp(localhost:3306)/ktap?charset=utf8&interpolateParams=true&parseTime=true")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.store", "redis")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.private_key_path", "./keys/jwtRS256.key")
	v.SetDefault("session.public_key_path", "./keys/jwtRS256.key.pub")
	v.SetDefault("cors.origins", []string{"http://localhost:3000"})
	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("icons.bucket", "")
	v.SetDefault("icons.region", "eu-central-1")
	v.SetDefault("icons.ttl", 15*time.Minute)
	v.SetDefault("secure_cookies", false)
}

// LoadServer reads defaults, then the optional file at path, then KTAP_*
// environment variables.
func LoadServer(path string) (*Server, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	setServerDefaults(v)

	cfg := &Server{
		Addr:  v.GetString("addr"),
		Mongo: Mongo{URI: v.GetString("mongo.uri"), Database: v.GetString("mongo.database")},
		MySQL: MySQL{DSN: v.GetString("mysql.dsn")},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Session: Session{
			Store:          v.GetString("session.store"),
			TTL:            v.GetDuration("session.ttl"),
			PrivateKeyPath: v.GetString("session.private_key_path"),
			PublicKeyPath:  v.GetString("session.public_key_path"),
		},
		CORS:      CORS{Origins: v.GetStringSlice("cors.origins")},
		RateLimit: RateLimit{RPS: v.GetFloat64("rate_limit.rps"), Burst: v.GetInt("rate_limit.burst")},
		Icons: Icons{
			Bucket: v.GetString("icons.bucket"),
			Region: v.GetString("icons.region"),
			TTL:    v.GetDuration("icons.ttl"),
		},
		SecureCookies: v.GetBool("secure_cookies"),
	}

	return cfg, cfg.validate()
}

func (s *Server) validate() error {
	if s.Session.Store != "redis" && s.Session.Store != "mysql" {
		return errors.New("session.store must be redis or mysql")
	}
	if s.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	if s.RateLimit.RPS <= 0 || s.RateLimit.Burst <= 0 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}

func LoadClient(path string) (*Client, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("timeout", 10*time.Second)

	return &Client{
		BaseURL:  strings.TrimRight(v.GetString("base_url"), "/"),
		Timeout:  v.GetDuration("timeout"),
		Email:    v.GetString("email"),
		Password: v.GetString("password"),
	}, nil
}
