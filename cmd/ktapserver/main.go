package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"ktap/pkg/comments"
	"ktap/pkg/common"
	"ktap/pkg/config"
	"ktap/pkg/gifts"
	"ktap/pkg/handlers"
	"ktap/pkg/icons"
	"ktap/pkg/items"
	"ktap/pkg/middleware"
	"ktap/pkg/session"
	"ktap/pkg/user"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		email VARCHAR(255) NOT NULL,
		name VARCHAR(50) NOT NULL,
		avatar VARCHAR(255) NOT NULL DEFAULT '',
		password VARBINARY(100) NOT NULL,
		balance BIGINT NOT NULL DEFAULT 0,
		is_admin TINYINT(1) NOT NULL DEFAULT 0,
		PRIMARY KEY (id),
		UNIQUE KEY users_email (email)
	) ENGINE=INNODB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS gifts (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		name VARCHAR(50) NOT NULL,
		description VARCHAR(255) NOT NULL DEFAULT '',
		icon VARCHAR(255) NOT NULL DEFAULT '',
		price BIGINT NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS gift_sends (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		gift_id int(11) unsigned NOT NULL,
		sender_id int(11) unsigned NOT NULL,
		recipient_id int(11) unsigned NOT NULL,
		item_kind VARCHAR(16) NOT NULL,
		item_id VARCHAR(64) NOT NULL,
		created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY gift_sends_item (item_kind, item_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8mb4;`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id VARCHAR(64) NOT NULL,
		user_id int(11) unsigned NOT NULL,
		expires_at DATETIME NOT NULL,
		PRIMARY KEY (id),
		KEY sessions_user (user_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8mb4;`,
	"INSERT IGNORE INTO gifts (`id`, `name`, `description`, `icon`, `price`) VALUES " +
		"(1, 'Heart', 'Show some love', 'gifts/heart.png', 200), " +
		"(2, 'Trophy', 'Game of the year material', 'gifts/trophy.png', 500), " +
		"(3, 'Rocket', 'To the moon', 'gifts/rocket.png', 1000)",
}

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to a yaml config file; KTAP_* env vars override it")
	flag.Parse()

	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		logger.Fatalw("can't load config", "error", err)
	}

	app := &Application{Config: cfg, Logger: logger}
	if err := app.Run(); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

type Application struct {
	Config *config.Server
	Logger *zap.SugaredLogger

	HTTPServer *http.Server
}

func (a *Application) Run() error {
	cfg := a.Config
	logger := a.Logger

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("mysql: %w", err)
	}
	for _, stmt := range schema {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("mysql schema: %w", err)
		}
	}

	client, err := common.NewMongoClient(ctx, cfg.Mongo.URI)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	mdb := client.Database(cfg.Mongo.Database)

	privateKeyBytes, err := ioutil.ReadFile(cfg.Session.PrivateKeyPath)
	if err != nil {
		return err
	}
	publicKeyBytes, err := ioutil.ReadFile(cfg.Session.PublicKeyPath)
	if err != nil {
		return err
	}
	smJWT, err := session.NewSessionsJWTManager(privateKeyBytes, publicKeyBytes)
	if err != nil {
		return err
	}

	var sm session.SessionManager
	switch cfg.Session.Store {
	case "mysql":
		sm = session.NewSessionManagerSQL(db, smJWT)
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		sm = session.NewSessionManagerRedis(rdb, smJWT)
	}

	var signer handlers.IconSigner
	if cfg.Icons.Bucket != "" {
		p, err := icons.NewS3Presigner(ctx, cfg.Icons.Region, cfg.Icons.Bucket, cfg.Icons.TTL)
		if err != nil {
			return err
		}
		signer = p
	}

	repos := &Repos{
		Users:    user.NewUserRepoSQL(db),
		Items:    items.NewItemsRepoMongo(mdb),
		Comments: comments.NewCommentsRepoMongo(mdb),
		Gifts:    gifts.NewGiftRepoSQL(db),
		Icons:    signer,
	}

	r := NewRouter(repos, sm, logger, cfg.Session.TTL, cfg.SecureCookies)

	limiter := middleware.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	var h http.Handler = middleware.RateLimit(logger, limiter, r)
	h = middleware.Auth(logger, sm, h)
	h = middleware.CORS(cfg.CORS.Origins, h)
	h = middleware.Log(logger, h)
	h = middleware.Recover(logger, h)

	a.HTTPServer = &http.Server{
		Handler:      h,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	logger.Infow("started server", "addr", cfg.Addr, "session_store", cfg.Session.Store)
	return a.HTTPServer.ListenAndServe()
}
