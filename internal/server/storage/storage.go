package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/diamond-terrain/internal/server/config"
)

// Storage resolves configuration sources into a local work directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating it as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return &Storage{dir: dir, log: log}, nil
}

// Fetch retrieves src into the work directory under name and returns the
// local path. src is anything go-getter understands: a local path, an
// http(s) URL, git::, s3::, gcs:: and so on.
func (s *Storage) Fetch(ctx context.Context, src, name string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dst := filepath.Join(s.dir, name)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch %s: %w", src, err)
	}
	s.log.Debug("fetched source", "src", src, "path", dst)
	return dst, nil
}

// LoadConfig fetches src and decodes it as a YAML config file.
func (s *Storage) LoadConfig(ctx context.Context, src string) (*config.Config, error) {
	path, err := s.Fetch(ctx, src, "config.yaml")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	s.log.Info("loaded config", "src", src)
	return cfg, nil
}
