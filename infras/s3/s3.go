package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"stayledger/config"
	"stayledger/infras/otel"
	"stayledger/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName  = "s3"
	otelAttrObject = "object"
	otelAttrBucket = "bucket"
	defaultRegion  = "auto"
)

// ErrObjectNotFound is returned by Download when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

type S3 interface {
	Upload(ctx context.Context, name, contentType string, data []byte) error
	Download(ctx context.Context, name string) ([]byte, error)
}

type s3Impl struct {
	client    *s3.Client
	bucket    string
	directory string
	otel      otel.Otel
}

// ObjectKey places name under the configured directory.
func (svc *s3Impl) ObjectKey(name string) string {
	return path.Join(svc.directory, name)
}

func (svc *s3Impl) Upload(ctx context.Context, name, contentType string, data []byte) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, otelScopeName, otelScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := svc.ObjectKey(name)

	scope.SetAttributes(map[string]any{
		otelAttrObject: key,
		otelAttrBucket: svc.bucket,
	})

	reader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object to S3")

		return fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) Download(ctx context.Context, name string) (data []byte, err error) {
	ctx, scope := svc.otel.NewScope(ctx, otelScopeName, otelScopeName+".Download")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := svc.ObjectKey(name)

	scope.SetAttributes(map[string]any{
		otelAttrObject: key,
		otelAttrBucket: svc.bucket,
	})

	out, err := svc.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrObjectNotFound
		}

		log.Error().Err(err).Str("key", key).Msg("failed to download object from S3")

		return nil, fmt.Errorf("failed to download object from S3: %w", err)
	}

	defer out.Body.Close()

	data, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return data, nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	s3Cfg := config.External.S3

	staticProvider := credentials.NewStaticCredentialsProvider(
		s3Cfg.AccessKey,
		s3Cfg.SecretKey,
		constant.Empty,
	)

	region := s3Cfg.Region
	if region == "" {
		region = defaultRegion
	}

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s3Cfg.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:    client,
		bucket:    s3Cfg.BucketName,
		directory: s3Cfg.Directory,
		otel:      otel,
	}
}
