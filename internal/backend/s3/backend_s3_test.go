// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	objects     map[string]string
	contentType string
	getErr      error
	putErr      error
}

func (f *fakeClient) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.objects[awsv2.ToString(in.Bucket)+"/"+awsv2.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(v))}, nil
}

func (f *fakeClient) PutObject(_ context.Context, in *s3v2.PutObjectInput, _ ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[awsv2.ToString(in.Bucket)+"/"+awsv2.ToString(in.Key)] = string(body)
	f.contentType = awsv2.ToString(in.ContentType)
	return &s3v2.PutObjectOutput{}, nil
}

func TestNewBackendS3_RequiresBucket(t *testing.T) {
	_, err := NewBackendS3(context.Background(), WithBucket(" "), WithClient(&fakeClient{}))
	assert.ErrorContains(t, err, "bucket is required")
}

func TestBackendS3_ObjectKey(t *testing.T) {
	tests := []struct {
		prefix string
		key    string
		want   string
	}{
		{"", "aquaHome.shortcuts", "aquaHome.shortcuts.json"},
		{"pages", "shortcuts", "pages/shortcuts.json"},
		{"/pages/home/", "shortcuts", "pages/home/shortcuts.json"},
		{"pages", "../x", "pages/..%2Fx.json"},
		{"pages", "..", "pages/...json"},
		{"pages", "a/b", "pages/a%2Fb.json"},
		{"", "a b", "a%20b.json"},
	}
	for _, tt := range tests {
		be, err := NewBackendS3(context.Background(),
			WithBucket("b"), WithPrefix(tt.prefix), WithClient(&fakeClient{}))
		require.NoError(t, err)
		assert.Equal(t, tt.want, be.ObjectKey(tt.key))
	}
}

func TestBackendS3_GetSet(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{objects: map[string]string{}}

	be, err := NewBackendS3(ctx, WithBucket("start-page"), WithPrefix("tabctl"), WithClient(fc))
	require.NoError(t, err)
	assert.Equal(t, "s3", be.Type())
	assert.Equal(t, "backend-s3:start-page/tabctl", be.String())

	_, ok, err := be.Get(ctx, "aquaHome.shortcuts")
	require.NoError(t, err)
	assert.False(t, ok, "NoSuchKey reads as absent")

	require.NoError(t, be.Set(ctx, "aquaHome.shortcuts", `[]`))
	assert.Equal(t, `[]`, fc.objects["start-page/tabctl/aquaHome.shortcuts.json"])
	assert.Equal(t, "application/json", fc.contentType)

	v, ok, err := be.Get(ctx, "aquaHome.shortcuts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestBackendS3_Errors(t *testing.T) {
	ctx := context.Background()
	denied := &smithy.GenericAPIError{Code: "AccessDenied", Message: "nope"}

	fc := &fakeClient{objects: map[string]string{}, getErr: denied, putErr: denied}
	be, err := NewBackendS3(ctx, WithBucket("b"), WithClient(fc))
	require.NoError(t, err)

	_, _, err = be.Get(ctx, "k")
	assert.ErrorIs(t, err, denied)
	assert.ErrorIs(t, be.Set(ctx, "k", "v"), denied)

	fc.getErr = &smithy.GenericAPIError{Code: "NotFound"}
	_, ok, err := be.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(errors.New("boom")))
}
