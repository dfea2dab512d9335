// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Struct tags are
// checked first; the resulting field errors are mapped onto the package
// sentinels by their top-level group.
func (cfg *StructuredConfig) validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("error validating config: %w", err)
		}

		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s failed on %q", sentinelForNamespace(fe.StructNamespace()), fe.StructNamespace(), fe.Tag())
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one of HTTP or gRPC address is required", ErrInvalidServerConfigs)
	}

	if _, err := cron.ParseStandard(cfg.Workers.RetentionSchedule); err != nil {
		return fmt.Errorf("%w: retention schedule: %v", ErrInvalidWorkerConfigs, err)
	}

	return nil
}

func sentinelForNamespace(ns string) error {
	switch {
	case strings.HasPrefix(ns, "StructuredConfig.Storage."):
		return ErrInvalidStorageConfigs
	case strings.HasPrefix(ns, "StructuredConfig.Workers."):
		return ErrInvalidWorkerConfigs
	default:
		return ErrInvalidServerConfigs
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
