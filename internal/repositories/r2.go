package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rohits-web03/voxdesk/internal/config"
)

type R2Storage struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

// NewR2Storage builds an R2 client using static credentials and the account endpoint.
func NewR2Storage(cfg config.R2Config) *R2Storage {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized R2 client")

	return &R2Storage{client: client, bucket: cfg.BucketName, endpoint: endpoint}
}

// PresignPut creates a presigned URL for uploading an object to R2.
func (s *R2Storage) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(s.client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Exists checks if a given object key exists in the R2 bucket.
// Returns true if the object exists, false if not, and an error if something went wrong.
func (s *R2Storage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		// Other error (e.g. auth, network)
		return false, err
	}
	return true, nil
}
