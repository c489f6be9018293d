package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options configures the S3 client built by NewS3Client.
type S3Options struct {
	// Region is the bucket region (default: "us-east-1").
	Region string

	// Endpoint overrides the service endpoint, e.g. for MinIO.
	Endpoint string

	// PathStyle addresses buckets as endpoint/bucket instead of
	// bucket.endpoint.
	PathStyle bool
}

// NewS3Client builds an S3 client. Credentials are read from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN; requests
// are anonymous when they are unset.
func NewS3Client(opts S3Options) *s3.Client {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	options := s3.Options{
		Region:       region,
		UsePathStyle: opts.PathStyle,
	}
	if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
		options.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials))
	} else {
		options.Credentials = aws.AnonymousCredentials{}
	}
	if opts.Endpoint != "" {
		options.BaseEndpoint = aws.String(opts.Endpoint)
	}
	return s3.New(options)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("store: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must both be set")
	}
	return creds, nil
}

// S3Store stores documents as objects in a bucket.
//
// Example usage:
//
//	client := store.NewS3Client(store.S3Options{Region: "eu-west-1"})
//	st := store.NewS3Store(client, "reports", "daily/")
//	loc, err := page.Publish(ctx, st, "2024-05-01.html")
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store creates a store writing to bucket under the key prefix.
func NewS3Store(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) key(name string) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if s.prefix == "" {
		return name, nil
	}
	return path.Join(s.prefix, name), nil
}

// Put uploads body and returns its s3:// location.
func (s *S3Store) Put(ctx context.Context, name string, body io.Reader, contentType string) (string, error) {
	key, err := s.key(name)
	if err != nil {
		return "", err
	}

	// PutObject needs a seekable body to compute checksums over plain HTTP.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(int64(buf.Len())),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"generator":    "dataviewer",
			"publish-time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// Get downloads a stored document.
func (s *S3Store) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

// PresignURL returns a time-limited GET URL for a stored document. It
// requires a real *s3.Client.
func (s *S3Store) PresignURL(ctx context.Context, name string, expiry time.Duration) (string, error) {
	client, ok := s.client.(*s3.Client)
	if !ok {
		return "", errors.New("store: presigning needs an *s3.Client")
	}
	key, err := s.key(name)
	if err != nil {
		return "", err
	}
	req, err := s3.NewPresignClient(client).PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		},
		s3.WithPresignExpires(expiry),
	)
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
