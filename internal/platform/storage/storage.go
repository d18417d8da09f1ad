package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"dividend_backend/internal/feature/company/usecase"
)

// New builds the icon store selected by cfg.Kind. It returns nil for KindNone,
// in which case companies are stored without a local icon copy.
func New(ctx context.Context, cfg Config) (usecase.IconStore, error) {
	switch cfg.Kind {
	case KindNone:
		return nil, nil
	case KindLocal:
		return NewLocalIconStore(cfg.Dir, cfg.BaseURL), nil
	case KindS3:
		if cfg.Bucket == "" {
			return nil, fmt.Errorf("storage: ICON_S3_BUCKET is required for the s3 icon store")
		}
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("storage: load aws config: %w", err)
		}
		client := s3.NewFromConfig(awsCfg)
		return NewS3IconStore(manager.NewUploader(client), client, cfg.Bucket, cfg.S3Prefix), nil
	default:
		return nil, fmt.Errorf("storage: unknown icon store %q", cfg.Kind)
	}
}
