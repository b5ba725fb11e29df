package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// Version is reported on the build info screen.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sync server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Metered declares the active network as metered.
	Metered bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the path of the local SQLite file.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client sync scheduling settings.
type ClientWorkers struct {
	// AutoSyncInterval is the background sync tick and its minimum interval.
	AutoSyncInterval time.Duration
	// ManualSyncInterval is the minimum interval of user-initiated sync.
	ManualSyncInterval time.Duration
	// RequireUnmetered skips sync on a metered network.
	RequireUnmetered bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config with the same sources as [GetStructuredConfig],
// maps only the fields relevant to the client runtime, and validates the
// resulting [ClientConfig]. Server-only settings are not required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

// defaultClientDSN is the local database file used when none is configured.
const defaultClientDSN = "notes.db"

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = defaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Metered:        cfg.Adapter.Metered,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: dsn,
			},
		},
		Workers: ClientWorkers{
			AutoSyncInterval:   cfg.Workers.AutoSyncInterval,
			ManualSyncInterval: cfg.Workers.ManualSyncInterval,
			RequireUnmetered:   cfg.Workers.RequireUnmetered,
		},
	}
}
