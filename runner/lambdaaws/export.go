package lambdaaws

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/tpgainz/companies-house/config"
)

// putObjectAPI is the part of the S3 client the exporter uses.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3Exporter writes lookup results as JSON objects to one bucket.
type s3Exporter struct {
	client putObjectAPI
	bucket string
	prefix string
}

func newS3Exporter(ctx context.Context, cfg config.ExportConfig) (*s3Exporter, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.StaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("lambdaaws: load aws config: %w", err)
	}

	return &s3Exporter{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
	}, nil
}

// objectKey is <prefix>/<resource>/<subject>/<uuid>.json.
func (e *s3Exporter) objectKey(resource, subject string) string {
	return path.Join(e.prefix, resource, subject, uuid.New().String()+".json")
}

// Export stores body and returns its object key.
func (e *s3Exporter) Export(ctx context.Context, resource, subject string, body []byte) (string, error) {
	key := e.objectKey(resource, subject)

	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("lambdaaws: put s3://%s/%s: %w", e.bucket, key, err)
	}

	return key, nil
}
