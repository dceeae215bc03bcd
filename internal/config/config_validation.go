// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] before it is used.
func (cfg *StructuredConfig) validate() error {
	if err := structValidator.Struct(cfg.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}

	if cfg.Output.Key != "" && cfg.Output.Sources {
		return fmt.Errorf("%w: -key and -sources are mutually exclusive", ErrInvalidOutputConfigs)
	}

	if err := structValidator.Struct(cfg.Log); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
