package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	appConfig "kanban-board-api/internal/config"
	"kanban-board-api/internal/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectStore defines the interface for uploading board backups and exports
type ObjectStore interface {
	BackupKey(boardID uuid.UUID) string
	ExportKey(boardID uuid.UUID, format string) string
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	ObjectURL(key string) string
}

// S3Client wraps the AWS S3 client and implements ObjectStore
type S3Client struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string // set when talking to a local MinIO
	prefix   string
	metrics  *metrics.Metrics // optional
}

// NewS3Client creates a new S3 client
func NewS3Client(cfg *appConfig.S3Config, m *metrics.Metrics) (*S3Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("S3 region is required")
	}

	var awsCfg aws.Config
	var err error

	// A custom endpoint means local MinIO, which needs explicit credentials
	// and path-style addressing
	if cfg.Endpoint != "" {
		if cfg.AccessKey == "" || cfg.SecretKey == "" {
			return nil, fmt.Errorf("access key and secret key are required for MinIO endpoint")
		}
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
			config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL:               cfg.Endpoint,
						HostnameImmutable: true,
						SigningRegion:     cfg.Region,
					}, nil
				},
			)),
		)
	} else {
		// AWS SDK default credential chain (IAM role on EC2, ~/.aws/credentials locally)
		awsCfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.UsePathStyle = true // required for MinIO
		}
	})

	return &S3Client{
		client:   s3Client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
		prefix:   strings.Trim(cfg.Prefix, "/"),
		metrics:  m,
	}, nil
}

// BackupKey builds the object key for a scheduled board backup.
// Format: {prefix}/backups/{year}/{month}/board_{boardId}_{timestamp}.json
func (c *S3Client) BackupKey(boardID uuid.UUID) string {
	now := time.Now().UTC()
	key := fmt.Sprintf("backups/%s/%s/board_%s_%d.json",
		now.Format("2006"), now.Format("01"), boardID, now.Unix())
	return c.withPrefix(key)
}

// ExportKey builds the object key for an on-demand board export
func (c *S3Client) ExportKey(boardID uuid.UUID, format string) string {
	now := time.Now().UTC()
	key := fmt.Sprintf("exports/%s/%s/board_%s_%d.%s",
		now.Format("2006"), now.Format("01"), boardID, now.Unix(), format)
	return c.withPrefix(key)
}

func (c *S3Client) withPrefix(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + "/" + key
}

// Upload stores an object and returns its URL
func (c *S3Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	start := time.Now()
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	c.recordCall("s3_put_object", "PUT", time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %w", err)
	}
	return c.ObjectURL(key), nil
}

// Delete removes an object
func (c *S3Client) Delete(ctx context.Context, key string) error {
	start := time.Now()
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	c.recordCall("s3_delete_object", "DELETE", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}
	return nil
}

func (c *S3Client) recordCall(endpoint, method string, duration time.Duration, err error) {
	if c.metrics == nil {
		return
	}
	statusCode := 200
	if err != nil {
		statusCode = 0
		c.metrics.RecordExternalAPIError(endpoint, "request_failed")
	}
	c.metrics.RecordExternalAPIRequest(endpoint, method, statusCode, duration)
}

// ObjectURL returns the URL for an object key
func (c *S3Client) ObjectURL(key string) string {
	if c.endpoint != "" {
		// MinIO path-style: http://localhost:9000/bucket/key
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.endpoint, "/"), c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
