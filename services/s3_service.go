package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	photoPrefix   = "profile-photos/"
	readURLExpiry = 7 * 24 * time.Hour
	putURLExpiry  = 5 * time.Minute
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// S3Service is the photo object store: server-side uploads for the profile
// setup flow plus presigned URLs for direct client access.
type S3Service struct {
	Client    *s3.Client
	Presigner *s3.PresignClient
	Bucket    string
}

// NewS3Service loads the default AWS config and returns a store bound to
// the bucket named in S3_BUCKET_NAME.
func NewS3Service(ctx context.Context) (*S3Service, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Service{
		Client:    client,
		Presigner: s3.NewPresignClient(client),
		Bucket:    os.Getenv("S3_BUCKET_NAME"),
	}, nil
}

// Upload stores one photo and returns a presigned read URL plus the
// object key. The content type is sniffed from the bytes rather than
// trusted from the client.
func (s *S3Service) Upload(ctx context.Context, fileName, contentType string, data []byte) (string, string, error) {
	key := fmt.Sprintf("%s%d_%s", photoPrefix, time.Now().UnixMilli(), unsafeKeyChars.ReplaceAllString(fileName, "_"))

	if detected := http.DetectContentType(data); detected != "application/octet-stream" {
		contentType = detected
	}

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", fileName, err)
	}

	url, err := s.PresignGet(ctx, key)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// PresignGet generates a presigned URL for reading an object.
func (s *S3Service) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(readURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign read for %s: %w", key, err)
	}
	return req.URL, nil
}

// PresignPut generates a presigned URL for uploading a file directly from
// the client, and the key it will land under.
func (s *S3Service) PresignPut(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := photoPrefix + time.Now().Format("20060102150405") + "-" + fileName
	req, err := s.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(putURLExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload for %s: %w", fileName, err)
	}
	return req.URL, key, nil
}

// Delete removes an object.
func (s *S3Service) Delete(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Ping checks that the bucket is reachable.
func (s *S3Service) Ping(ctx context.Context) error {
	_, err := s.Client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.Bucket)})
	return err
}
