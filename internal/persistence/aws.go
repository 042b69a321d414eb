package persistence

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/transcriptions-ai/transcriber/internal/config"
)

// AWS bundles the shared service clients used by the repositories. Clients
// are built once per process and are safe for concurrent invocations.
type AWS struct {
	Dynamo *dynamodb.Client
	S3     *s3.Client
}

// NewAWS loads the default AWS configuration and constructs service clients,
// honoring endpoint overrides for local development.
func NewAWS(ctx context.Context, cfg config.AWSConfig, logger *zap.Logger) (*AWS, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	dynamo := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	})
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("aws clients initialized", zap.String("region", cfg.Region))
	return &AWS{Dynamo: dynamo, S3: s3Client}, nil
}
