// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions verifies that option functions populate the options struct and
// that later options override earlier ones.
func TestOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		wantProfile string
		wantRegion  string
		wantRetryer bool
	}{
		{name: "none"},
		{name: "profile", opts: []Option{WithProfile("docs-ro")}, wantProfile: "docs-ro"},
		{name: "region", opts: []Option{WithRegion("eu-west-1")}, wantRegion: "eu-west-1"},
		{
			name:       "last region wins",
			opts:       []Option{WithRegion("us-east-1"), WithRegion("ap-southeast-1")},
			wantRegion: "ap-southeast-1",
		},
		{
			name:        "retryer",
			opts:        []Option{WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })},
			wantRetryer: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o options
			for _, opt := range tt.opts {
				opt(&o)
			}
			assert.Equal(t, tt.wantProfile, o.profile)
			assert.Equal(t, tt.wantRegion, o.region)
			assert.Equal(t, tt.wantRetryer, o.retryer != nil)
		})
	}
}

// TestLoadAWSConfig_WithRegion verifies that the region override lands in
// the loaded config. No network or credentials are needed to load config.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/aws/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/aws/credentials")

	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("us-west-2"),
		WithRetryer(func() awsv2.Retryer { return retry.NewStandard() }),
	)

	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

// TestLoadAWSConfig_MissingProfile verifies that naming a profile that does
// not exist is reported rather than silently ignored.
func TestLoadAWSConfig_MissingProfile(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/aws/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/aws/credentials")

	_, err := LoadAWSConfig(context.Background(), WithProfile("sbsdiff-no-such-profile"))
	assert.Error(t, err)
}

// TestWithS3Endpoint verifies that WithS3Endpoint sets a base endpoint
// and path-style addressing, and leaves options alone when empty.
func TestWithS3Endpoint(t *testing.T) {
	var o s3v2.Options
	WithS3Endpoint("")(&o)
	assert.Nil(t, o.BaseEndpoint)
	assert.False(t, o.UsePathStyle)

	WithS3Endpoint("http://localhost:9000")(&o)
	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *o.BaseEndpoint)
	assert.True(t, o.UsePathStyle)
}

// TestNewS3 verifies client construction with and without service options.
func TestNewS3(t *testing.T) {
	cfg := awsv2.Config{Region: "us-east-1"}

	client := NewS3(cfg)
	assert.IsType(t, &s3v2.Client{}, client)
	assert.Nil(t, client.Options().BaseEndpoint)

	client = NewS3(cfg, WithS3Endpoint("http://localhost:9000"))
	require.NotNil(t, client.Options().BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *client.Options().BaseEndpoint)
	assert.True(t, client.Options().UsePathStyle)
}
