// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGetter serves objects from a map keyed by "bucket/key".
type fakeGetter struct {
	objects map[string]string
	calls   int
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.calls++
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "running.cfg")
	require.NoError(t, os.WriteFile(path, []byte("hostname R1\n"), 0o600))

	got, err := NewLoader().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hostname R1\n", got)

	_, err = NewLoader().Read(context.Background(), filepath.Join(t.TempDir(), "missing.cfg"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadStdin(t *testing.T) {
	l := NewLoader(WithStdin(strings.NewReader("a\nb")))

	got, err := l.Read(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	_, err = l.Read(context.Background(), "-")
	assert.ErrorIs(t, err, ErrStdinReused)
}

func TestReadS3(t *testing.T) {
	getter := &fakeGetter{objects: map[string]string{
		"configs/r1/running.cfg": "hostname R1-OLD",
	}}
	l := NewLoader(WithObjectGetter(getter))

	got, err := l.Read(context.Background(), "s3://configs/r1/running.cfg")
	require.NoError(t, err)
	assert.Equal(t, "hostname R1-OLD", got)

	_, err = l.Read(context.Background(), "s3://configs/r1/missing.cfg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchKey")

	_, err = l.Read(context.Background(), "s3://configs")
	assert.ErrorIs(t, err, ErrInvalidS3URI)
	assert.Equal(t, 2, getter.calls, "invalid uris never reach s3")
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		spec       string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{spec: "s3://bucket/key", wantBucket: "bucket", wantKey: "key"},
		{spec: "s3://bucket/nested/path/doc.txt", wantBucket: "bucket", wantKey: "nested/path/doc.txt"},
		{spec: "s3://bucket", wantErr: true},
		{spec: "s3://bucket/", wantErr: true},
		{spec: "s3:///key", wantErr: true},
		{spec: "https://bucket/key", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			bucket, key, err := ParseS3URI(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidS3URI)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestObjectGetter_Lazy(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))

	l := NewLoader(WithRegion("us-west-2"), WithEndpoint("http://localhost:9000"))
	g, err := l.objectGetter(context.Background())
	require.NoError(t, err)

	client, ok := g.(*s3v2.Client)
	require.True(t, ok)
	opts := client.Options()
	assert.Equal(t, "us-west-2", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	again, err := l.objectGetter(context.Background())
	require.NoError(t, err)
	assert.Same(t, client, again)
}
