// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/tfctl/sbsdiff/internal/aws"
	"github.com/tfctl/sbsdiff/internal/log"
)

const (
	stdinSpec = "-"
	s3Scheme  = "s3://"

	s3MaxAttempts = 5
)

var (
	// ErrStdinReused is returned when more than one document is read from stdin.
	ErrStdinReused = errors.New("stdin can only be read once")

	// ErrInvalidS3URI is returned for s3:// specs missing a bucket or key.
	ErrInvalidS3URI = errors.New("invalid s3 uri, want s3://bucket/key")
)

// ObjectGetter is the subset of the S3 client used to fetch documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// Loader reads documents. It is not safe for concurrent use; each Loader
// tracks whether stdin has been consumed.
type Loader struct {
	stdin     io.Reader
	stdinUsed bool

	profile  string
	region   string
	endpoint string

	s3 ObjectGetter
}

// Option customizes a Loader.
type Option func(*Loader)

// WithStdin replaces os.Stdin as the reader behind "-".
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithProfile sets the AWS shared config profile for s3:// documents.
func WithProfile(profile string) Option {
	return func(l *Loader) { l.profile = profile }
}

// WithRegion sets the AWS region for s3:// documents.
func WithRegion(region string) Option {
	return func(l *Loader) { l.region = region }
}

// WithEndpoint sets an S3-compatible endpoint for s3:// documents.
func WithEndpoint(endpoint string) Option {
	return func(l *Loader) { l.endpoint = endpoint }
}

// WithObjectGetter supplies the S3 client instead of building one from the
// AWS config chain on first use.
func WithObjectGetter(g ObjectGetter) Option {
	return func(l *Loader) { l.s3 = g }
}

// NewLoader returns a Loader reading stdin from os.Stdin unless overridden.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Read returns the text of the document named by spec.
func (l *Loader) Read(ctx context.Context, spec string) (string, error) {
	switch {
	case spec == stdinSpec:
		return l.readStdin()
	case strings.HasPrefix(spec, s3Scheme):
		return l.readS3(ctx, spec)
	default:
		return readFile(spec)
	}
}

func (l *Loader) readStdin() (string, error) {
	if l.stdinUsed {
		return "", ErrStdinReused
	}
	l.stdinUsed = true

	b, err := io.ReadAll(l.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	log.Debugf("read stdin: bytes=%d", len(b))
	return string(b), nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Debugf("read file: path=%s bytes=%d", path, len(b))
	return string(b), nil
}

func (l *Loader) readS3(ctx context.Context, spec string) (string, error) {
	bucket, key, err := ParseS3URI(spec)
	if err != nil {
		return "", err
	}

	client, err := l.objectGetter(ctx)
	if err != nil {
		return "", err
	}

	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", spec, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", spec, err)
	}
	log.Debugf("read s3 object: bucket=%s key=%s bytes=%d", bucket, key, len(b))
	return string(b), nil
}

// objectGetter returns the configured S3 client, building it from the AWS
// config chain on first use so local-only diffs never touch AWS config.
func (l *Loader) objectGetter(ctx context.Context) (ObjectGetter, error) {
	if l.s3 != nil {
		return l.s3, nil
	}

	opts := []awsx.Option{
		awsx.WithRetryer(func() awsv2.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), s3MaxAttempts)
		}),
	}
	if l.profile != "" {
		opts = append(opts, awsx.WithProfile(l.profile))
	}
	if l.region != "" {
		opts = append(opts, awsx.WithRegion(l.region))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	l.s3 = awsx.NewS3(cfg, awsx.WithS3Endpoint(l.endpoint))
	return l.s3, nil
}

// ParseS3URI splits s3://bucket/key into its bucket and key.
func ParseS3URI(spec string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(spec, s3Scheme)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidS3URI, spec)
	}

	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidS3URI, spec)
	}
	return bucket, key, nil
}
