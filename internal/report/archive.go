package report

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/JonMunkholm/seeder/internal/core"
)

// ObjectPutter is the subset of the S3 client used by Archiver.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds the parameters for archiving reports to an S3-compatible store.
type S3Config struct {
	Bucket          string
	Prefix          string
	Region          string // default us-east-1
	Endpoint        string // optional; e.g. MinIO
	PathStyle       bool
	AccessKeyID     string // optional; falls back to the default credentials chain
	SecretAccessKey string
}

// Archiver uploads text reports as objects named <prefix>/<run_id>.txt.
type Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewArchiver creates an Archiver over an existing client.
func NewArchiver(client ObjectPutter, bucket, prefix string) (*Archiver, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

// NewS3Archiver builds an S3 client from cfg and returns an Archiver using it.
func NewS3Archiver(ctx context.Context, cfg S3Config) (*Archiver, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewArchiver(client, cfg.Bucket, cfg.Prefix)
}

// Key returns the object key for a run.
func (a *Archiver) Key(runID string) string {
	if a.prefix == "" {
		return runID + ".txt"
	}
	return path.Join(a.prefix, runID+".txt")
}

// Archive uploads the text report of rep and returns the object key.
func (a *Archiver) Archive(ctx context.Context, rep core.Report) (string, error) {
	key := a.Key(rep.RunID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(Text(rep)),
		ContentType: aws.String("text/plain; charset=utf-8"),
		Metadata:    map[string]string{"run-id": rep.RunID},
	})
	if err != nil {
		return "", fmt.Errorf("archive report to s3://%s/%s: %w", a.bucket, key, err)
	}
	return key, nil
}
