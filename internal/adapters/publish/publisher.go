// Package publish uploads cache artifacts to S3-compatible object storage.
package publish

import (
	"bytes"
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.trai.ch/casset/internal/core/domain"
	"go.trai.ch/casset/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables holding the bucket configuration.
const (
	EnvEndpoint  = "CASSET_S3_ENDPOINT"
	EnvBucket    = "CASSET_S3_BUCKET"
	EnvAccessKey = "CASSET_S3_ACCESS_KEY"
	EnvSecretKey = "CASSET_S3_SECRET_KEY"
	EnvUseSSL    = "CASSET_S3_USE_SSL"
	EnvRegion    = "CASSET_S3_REGION"
)

const (
	defaultRegion = "us-east-1"
	cacheControl  = "public, max-age=31536000, immutable"
)

// Config locates the bucket artifacts are published to.
type Config struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	// MaxRetries bounds retries of failed requests. Zero keeps the client default.
	MaxRetries int
}

// ConfigFromEnv reads the CASSET_S3_* variables through getenv.
// SSL is on unless CASSET_S3_USE_SSL parses as false.
func ConfigFromEnv(getenv func(string) string) Config {
	useSSL := true
	if v := getenv(EnvUseSSL); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			useSSL = b
		}
	}
	return Config{
		Endpoint:  strings.TrimSpace(getenv(EnvEndpoint)),
		Bucket:    strings.TrimSpace(getenv(EnvBucket)),
		AccessKey: strings.TrimSpace(getenv(EnvAccessKey)),
		SecretKey: strings.TrimSpace(getenv(EnvSecretKey)),
		Region:    strings.TrimSpace(getenv(EnvRegion)),
		UseSSL:    useSSL,
	}
}

// Configured reports whether an endpoint and a bucket are set.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// Publisher implements ports.Publisher on a minio client.
type Publisher struct {
	client *minio.Client
	cfg    Config

	initOnce sync.Once
	initErr  error
}

var _ ports.Publisher = (*Publisher)(nil)

// New creates a Publisher. No request is made until the first Publish.
func New(cfg Config) (*Publisher, error) {
	if !cfg.Configured() {
		return nil, domain.ErrPublisherNotConfigured
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:     cfg.UseSSL,
		Region:     cfg.Region,
		MaxRetries: cfg.MaxRetries,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "endpoint", cfg.Endpoint)
	}

	return &Publisher{client: client, cfg: cfg}, nil
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	p.initOnce.Do(func() {
		exists, err := p.client.BucketExists(ctx, p.cfg.Bucket)
		if err != nil {
			p.initErr = err
			return
		}
		if exists {
			return
		}
		p.initErr = p.client.MakeBucket(ctx, p.cfg.Bucket, minio.MakeBucketOptions{Region: p.cfg.Region})
	})
	return p.initErr
}

// Publish uploads content under key and returns its URL.
func (p *Publisher) Publish(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	if err := p.ensureBucket(ctx); err != nil {
		err = zerr.Wrap(err, domain.ErrPublishFailed.Error())
		return "", zerr.With(err, "bucket", p.cfg.Bucket)
	}

	_, err := p.client.PutObject(ctx, p.cfg.Bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "bucket", p.cfg.Bucket)
		return "", zerr.With(err, "key", key)
	}
	return p.Location(key), nil
}

// Location returns the path-style URL of key.
func (p *Publisher) Location(key string) string {
	scheme := "http"
	if p.cfg.UseSSL {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   p.cfg.Endpoint,
		Path:   "/" + p.cfg.Bucket + "/" + strings.TrimPrefix(key, "/"),
	}
	return u.String()
}

// Unconfigured is the publisher used when no bucket is configured.
type Unconfigured struct{}

// Publish always fails with domain.ErrPublisherNotConfigured.
func (Unconfigured) Publish(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return "", domain.ErrPublisherNotConfigured
}
