// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"math"
	"regexp"
)

// DefaultThreshold is the word similarity at or above which two lines at the
// same alignment position are reported as an update.
const DefaultThreshold = 0.5

var lineBreak = regexp.MustCompile(`\r?\n`)

// Differ aligns and groups documents. The zero value is not usable; construct
// one with New.
type Differ struct {
	threshold float64
}

// Option customizes a Differ.
type Option func(*Differ)

// WithThreshold overrides DefaultThreshold. Callers should check the value
// with ValidateThreshold first.
func WithThreshold(t float64) Option {
	return func(d *Differ) { d.threshold = t }
}

// New returns a Differ with the given options applied.
func New(opts ...Option) *Differ {
	d := &Differ{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Threshold returns the similarity threshold in use.
func (d *Differ) Threshold() float64 {
	return d.threshold
}

// ValidateThreshold returns an error unless t is a number in [0,1].
func ValidateThreshold(t float64) error {
	if math.IsNaN(t) || t < 0 || t > 1 {
		return fmt.Errorf("threshold must be between 0 and 1, got %v", t)
	}
	return nil
}

// SplitLines divides text on \r?\n. An empty text is a document with no lines;
// otherwise a trailing line break yields a final empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return lineBreak.Split(text, -1)
}

// Diff splits both texts into lines, aligns them and groups the result into
// display rows.
func (d *Differ) Diff(oldText, newText string) []Row {
	a, b := SplitLines(oldText), SplitLines(newText)
	return Group(d.Align(a, b), a, b)
}

// Diff is shorthand for New().Diff(oldText, newText).
func Diff(oldText, newText string) []Row {
	return New().Diff(oldText, newText)
}
