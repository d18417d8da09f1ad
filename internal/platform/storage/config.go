// Package storage keeps company icons on local disk or in S3.
package storage

import (
	"os"
	"strings"
)

// Icon store kinds selected by ICON_STORE.
const (
	KindLocal = "local"
	KindS3    = "s3"
	KindNone  = "none"
)

// Config selects and configures the icon store.
type Config struct {
	Kind     string
	Dir      string // local: directory icons are written to
	BaseURL  string // local: URL prefix the directory is served under
	Bucket   string // s3: target bucket
	S3Prefix string // s3: key prefix inside the bucket
}

// LoadConfig reads the icon store configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Kind:     strings.ToLower(strings.TrimSpace(os.Getenv("ICON_STORE"))),
		Dir:      os.Getenv("ICON_DIR"),
		BaseURL:  os.Getenv("ICON_BASE_URL"),
		Bucket:   os.Getenv("ICON_S3_BUCKET"),
		S3Prefix: os.Getenv("ICON_S3_PREFIX"),
	}
	if cfg.Kind == "" {
		cfg.Kind = KindLocal
	}
	if cfg.Dir == "" {
		cfg.Dir = "./media/images/icon"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/media/images/icon"
	}
	if cfg.S3Prefix == "" {
		cfg.S3Prefix = "images/icon"
	}
	return cfg
}
