package di

import (
	"context"

	"dividend_backend/internal/feature/company/usecase"
	"dividend_backend/internal/platform/storage"
)

// NewIconStore creates the icon store selected by ICON_STORE. The returned
// local directory is empty unless icons are kept on disk and must be served.
func NewIconStore(ctx context.Context) (usecase.IconStore, storage.Config, error) {
	cfg := storage.LoadConfig()
	store, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	return store, cfg, nil
}
