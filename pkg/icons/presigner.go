package icons

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ObjectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Presigner turns gift icon object keys into short-lived download URLs.
type Presigner struct {
	client ObjectPresigner
	bucket string
	ttl    time.Duration
}

func NewPresigner(client ObjectPresigner, bucket string, ttl time.Duration) *Presigner {
	return &Presigner{client: client, bucket: bucket, ttl: ttl}
}

func NewS3Presigner(ctx context.Context, region, bucket string, ttl time.Duration) (*Presigner, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return NewPresigner(s3.NewPresignClient(s3.NewFromConfig(cfg)), bucket, ttl), nil
}

// Sign leaves absolute URLs and empty keys untouched.
func (p *Presigner) Sign(ctx context.Context, key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key, nil
	}

	params := &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}
	req, err := p.client.PresignGetObject(ctx, params, s3.WithPresignExpires(p.ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
