// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/tfctl/sbsdiff/internal/differ"
	"github.com/tfctl/sbsdiff/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	if s, ok := value.(string); !ok || !output.IsFormat(s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func OpsOutputValidator(value any) error {
	valid := []string{output.FormatText, output.FormatJSON}
	if s, ok := value.(string); !ok || !slices.Contains(valid, s) {
		return fmt.Errorf("must be one of %v", valid)
	}
	return nil
}

func ThresholdValidator(value any) error {
	t, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number, got %T", value)
	}
	return differ.ValidateThreshold(t)
}

func WidthValidator(value any) error {
	w, ok := value.(int)
	if !ok || w < 0 {
		return fmt.Errorf("must be zero or a positive number of columns")
	}
	return nil
}
