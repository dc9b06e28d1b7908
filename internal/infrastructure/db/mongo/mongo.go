package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultAppName        = "wms-console"
)

// Config describes the optional audit store.
type Config struct {
	URI      string
	Database string
	AppName  string
	// ConnectTimeout bounds server selection and the initial ping.
	ConnectTimeout time.Duration
}

// Store bundles the client with the audit database.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Open dials MongoDB and pings the primary before returning.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	appName := cfg.AppName
	if appName == "" {
		appName = defaultAppName
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{Client: client, DB: client.Database(cfg.Database)}, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
