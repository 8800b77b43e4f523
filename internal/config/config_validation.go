// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-strings-editor/models"
)

// validate checks the merged [StructuredConfig]. Source-level checks live in
// [ClientConfig.validate]; nothing is required at this level yet.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	// preferences and credentials must survive the process
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.HashKey == "" || cfg.App.CredentialsKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.DefaultPartition != "" {
		if _, err := models.ParsePartition(cfg.App.DefaultPartition); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
