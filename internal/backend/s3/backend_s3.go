// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package s3 keeps each value as a JSON object in an S3 (or S3-compatible)
// bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/staranto/tabctl/internal/aws"
)

// api is the slice of the S3 client the backend uses.
type api interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

type BackendS3 struct {
	Bucket    string
	Prefix    string
	Region    string
	Profile   string
	Endpoint  string
	PathStyle bool
	// MaxAttempts caps SDK retries; zero keeps the default.
	MaxAttempts int

	keyID, secret string
	client        api
}

type BackendS3Option func(*BackendS3)

func WithBucket(bucket string) BackendS3Option {
	return func(be *BackendS3) { be.Bucket = strings.TrimSpace(bucket) }
}

func WithPrefix(prefix string) BackendS3Option {
	return func(be *BackendS3) { be.Prefix = strings.Trim(prefix, "/") }
}

func WithRegion(region string) BackendS3Option {
	return func(be *BackendS3) { be.Region = region }
}

func WithProfile(profile string) BackendS3Option {
	return func(be *BackendS3) { be.Profile = profile }
}

// WithEndpoint targets an S3-compatible service such as MinIO.
func WithEndpoint(endpoint string) BackendS3Option {
	return func(be *BackendS3) { be.Endpoint = endpoint }
}

func WithPathStyle(pathStyle bool) BackendS3Option {
	return func(be *BackendS3) { be.PathStyle = pathStyle }
}

func WithMaxAttempts(n int) BackendS3Option {
	return func(be *BackendS3) { be.MaxAttempts = n }
}

// WithCredentials uses a fixed key pair instead of the AWS credential chain.
func WithCredentials(keyID, secret string) BackendS3Option {
	return func(be *BackendS3) {
		be.keyID = keyID
		be.secret = secret
	}
}

// WithClient replaces the SDK client. Tests use it to avoid the network.
func WithClient(client api) BackendS3Option {
	return func(be *BackendS3) { be.client = client }
}

func NewBackendS3(ctx context.Context, opts ...BackendS3Option) (*BackendS3, error) {
	be := &BackendS3{}
	for _, opt := range opts {
		opt(be)
	}

	if be.Bucket == "" {
		return nil, errors.New("s3 backend: bucket is required (set TABCTL_S3_BUCKET or backend.bucket)")
	}

	if be.client == nil {
		cfg, err := aws.LoadAWSConfig(ctx,
			aws.WithProfile(be.Profile),
			aws.WithRegion(be.Region),
			aws.WithMaxAttempts(be.MaxAttempts),
			aws.WithStaticCredentials(be.keyID, be.secret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		be.client = aws.NewS3(cfg,
			aws.WithS3BaseEndpoint(be.Endpoint),
			aws.WithS3PathStyle(be.PathStyle))
	}

	log.Debugf("s3 backend: %s", be)
	return be, nil
}

// ObjectKey returns the object that holds key. The key is escaped as a single
// path segment so it always lands directly beneath Prefix.
func (be *BackendS3) ObjectKey(key string) string {
	return path.Join(be.Prefix, url.PathEscape(key)+".json")
}

func (be *BackendS3) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := be.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(be.Bucket),
		Key:    awsv2.String(be.ObjectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get s3://%s/%s: %w", be.Bucket, be.ObjectKey(key), err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("read s3://%s/%s: %w", be.Bucket, be.ObjectKey(key), err)
	}
	return string(body), true, nil
}

func (be *BackendS3) Set(ctx context.Context, key, value string) error {
	_, err := be.client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(be.Bucket),
		Key:         awsv2.String(be.ObjectKey(key)),
		Body:        bytes.NewReader([]byte(value)),
		ContentType: awsv2.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", be.Bucket, be.ObjectKey(key), err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

func (be *BackendS3) String() string {
	return "backend-s3:" + be.Bucket + "/" + be.Prefix
}

func (be *BackendS3) Type() string {
	return "s3"
}

func (be *BackendS3) Close() error {
	return nil
}
