// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validate checks that the merged server configuration can be used to start
// the sync server.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	if err := validation.ValidateStruct(&app,
		validation.Field(&app.PasswordHashKey, validation.Required),
		validation.Field(&app.TokenSignKey, validation.Required),
		validation.Field(&app.TokenIssuer, validation.Required),
		validation.Field(&app.TokenDuration, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	db := cfg.Storage.DB
	if err := validation.ValidateStruct(&db,
		validation.Field(&db.DSN, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	server := cfg.Server
	if err := validation.ValidateStruct(&server,
		validation.Field(&server.HTTPAddress, validation.Required),
		validation.Field(&server.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	db := cfg.Storage.DB
	if err := validation.ValidateStruct(&db,
		validation.Field(&db.DSN, validation.Required, validation.By(notInMemory)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	adapter := cfg.Adapter
	if err := validation.ValidateStruct(&adapter,
		validation.Field(&adapter.HTTPAddress, validation.Required, is.RequestURL),
		validation.Field(&adapter.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	workers := cfg.Workers
	if err := validation.ValidateStruct(&workers,
		validation.Field(&workers.AutoSyncInterval, validation.Required),
		validation.Field(&workers.ManualSyncInterval, validation.Required,
			validation.Max(workers.AutoSyncInterval).Error("must not exceed the auto sync interval")),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	return nil
}

// notInMemory rejects SQLite in-memory databases.
func notInMemory(value any) error {
	dsn, _ := value.(string)
	if strings.Contains(dsn, "memory") {
		return errors.New("in-memory databases are not supported")
	}
	return nil
}
