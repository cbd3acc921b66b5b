// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/tabctl/internal/backend"
)

// GlobalFlagsValidator checks combinations that single flag validators cannot.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.IsSet("path") && c.String("path") != "" && c.IsSet("backend") {
		switch c.String("backend") {
		case "postgres", "s3", "memory":
			return fmt.Errorf("--path has no meaning for the %s backend", c.String("backend"))
		}
	}
	return nil
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func NotBlankValidator(value any) error {
	if strings.TrimSpace(value.(string)) == "" {
		return errors.New("must not be blank")
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	if !slices.Contains(validOutputFlagValues, value.(string)) {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func BackendValidator(value any) error {
	if !slices.Contains(backend.Types, strings.ToLower(value.(string))) {
		return fmt.Errorf("must be one of %v", backend.Types)
	}
	return nil
}
