// Package archive keeps copies of generated feeds in S3-compatible storage.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/LegnaDivad/shopify-goodbarber-sync/internal/domain"
)

const (
	contentType = "text/csv; charset=utf-8"
	keyLayout   = "20060102T150405Z"
)

type Config struct {
	Bucket          string
	Prefix          string
	Region          string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3 struct {
	client putObjectAPI
	bucket string
	prefix string
	logger *slog.Logger
}

func NewS3(ctx context.Context, cfg Config, logger *slog.Logger) (*S3, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})

	logger.Info("snapshot archive enabled", "bucket", cfg.Bucket, "prefix", cfg.Prefix)

	return newS3(client, cfg, logger), nil
}

func newS3(client putObjectAPI, cfg Config, logger *slog.Logger) *S3 {
	return &S3{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger.With("component", "archive"),
	}
}

// Archive uploads the snapshot under a key unique per tenant and generation
// time and returns that key.
func (a *S3) Archive(ctx context.Context, snap *domain.Snapshot) (string, error) {
	key := ObjectKey(a.prefix, snap)

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(snap.CSV),
		ContentLength: aws.Int64(int64(len(snap.CSV))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"tenant":         snap.ShopDomain,
			"products-count": strconv.Itoa(snap.ProductsCount),
		},
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	a.logger.Debug("snapshot uploaded", "tenant", snap.ShopDomain, "key", key, "bytes", len(snap.CSV))
	return key, nil
}

func ObjectKey(prefix string, snap *domain.Snapshot) string {
	return path.Join(prefix, snap.ShopDomain, snap.GeneratedAt.UTC().Format(keyLayout)+".csv")
}
