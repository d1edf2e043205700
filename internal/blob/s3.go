package blob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store builds an S3-backed store from the default AWS credential
// chain. publicBaseURL may be empty, in which case the virtual-hosted
// bucket URL is returned.
func NewS3Store(ctx context.Context, region, bucket, publicBaseURL string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("blob: unable to load AWS SDK config: %w", err)
	}

	return &S3Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("blob: unable to upload %s to S3: %w", path, err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + path, nil
	}
	region := s.client.Options().Region
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, region, path), nil
}
