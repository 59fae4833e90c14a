package transport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/releasedrop/internal/client/models"
	"github.com/dmitrijs2005/releasedrop/internal/common"
	"github.com/dmitrijs2005/releasedrop/internal/logging"
	"github.com/google/uuid"
)

// DefaultDownloadURLTTL is used when S3Options.URLTTL is not set.
const DefaultDownloadURLTTL = 7 * 24 * time.Hour

// S3Options configures an S3-compatible bucket (AWS, MinIO, R2).
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	URLTTL       time.Duration
}

// S3Transport stores the file as an object and answers with a presigned
// GET URL. The secret is not sent; access is decided before Send.
type S3Transport struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
	now     func() time.Time
	logger  logging.Logger
}

// NewS3Transport builds the S3 client from opts. Static credentials are used
// when both keys are set; otherwise the default AWS credential chain applies.
func NewS3Transport(ctx context.Context, opts S3Options, logger logging.Logger) (*S3Transport, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is not configured")
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3TransportFromClient(client, opts.Bucket, opts.URLTTL, logger), nil
}

func NewS3TransportFromClient(client *s3.Client, bucket string, ttl time.Duration, logger logging.Logger) *S3Transport {
	if ttl <= 0 {
		ttl = DefaultDownloadURLTTL
	}
	return &S3Transport{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// ObjectKey places uploads under releases/<release>/<yyyy>/<mm>/<uuid>/<name>.
func (t *S3Transport) ObjectKey(req models.UploadRequest) string {
	d := t.now().UTC()
	return fmt.Sprintf("releases/%s/%d/%02d/%s/%s", req.Release, d.Year(), d.Month(), uuid.NewString(), req.File.Name)
}

func (t *S3Transport) Send(ctx context.Context, req models.UploadRequest) (*Response, error) {
	f, err := os.Open(req.File.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrTransportFailure, req.File.Name, err)
	}
	defer f.Close()

	key := t.ObjectKey(req)
	t.logger.Debug(ctx, "putting object", "bucket", t.bucket, "key", key, "size", req.File.SizeBytes)

	_, err = t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(t.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(req.File.SizeBytes),
		ContentType:   aws.String("application/octet-stream"),
		Metadata: map[string]string{
			"release":  req.Release,
			"filename": req.File.Name,
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			// a readable refusal is reported like an endpoint {"error": ...} body
			msg := apiErr.ErrorMessage()
			if msg == "" {
				msg = apiErr.ErrorCode()
			}
			return &Response{Error: msg}, nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrTransportFailure, err)
	}

	presigned, err := t.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(t.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(t.ttl))
	if err != nil {
		return nil, fmt.Errorf("%w: presign: %v", common.ErrMalformedResponse, err)
	}

	return &Response{URL: presigned.URL}, nil
}
