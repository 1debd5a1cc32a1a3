package repository

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/arnav-sinha2713/trading-journal/config"
	"github.com/arnav-sinha2713/trading-journal/pkg/logger"
)

// ChartRepository persists uploaded chart screenshots on local disk, one
// directory per identity. Only the relative path ends up in the ledger.
type ChartRepository interface {
	Save(ctx context.Context, identity, symbol, date string, blob []byte) (string, error)
	BaseDir() string
}

type chartRepository struct {
	cfg *config.Config
	log *logger.Logger
	now func() time.Time
}

func NewChartRepository(cfg *config.Config, log *logger.Logger) ChartRepository {
	return &chartRepository{
		cfg: cfg,
		log: log,
		now: time.Now,
	}
}

func (r *chartRepository) BaseDir() string {
	return r.cfg.Journal.ChartDir
}

// Save writes the blob as charts_<identity>/<symbol>_<date>_<HHMMSS>.png
// under the configured base directory and returns the relative path.
func (r *chartRepository) Save(ctx context.Context, identity, symbol, date string, blob []byte) (string, error) {
	if int64(len(blob)) > r.cfg.Journal.MaxChartSizeBytes {
		return "", fmt.Errorf("chart image exceeds %d bytes", r.cfg.Journal.MaxChartSizeBytes)
	}
	contentType := http.DetectContentType(blob)
	if contentType != "image/png" && contentType != "image/jpeg" {
		return "", fmt.Errorf("unsupported chart content type %s", contentType)
	}

	name := SanitizeIdentity(identity)
	dir := fmt.Sprintf("charts_%s", name)
	filename := fmt.Sprintf("%s_%s_%s.png", symbol, date, r.now().Format("150405"))
	relPath := filepath.Join(dir, filename)

	absDir := filepath.Join(r.cfg.Journal.ChartDir, dir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory %s: %w", absDir, err)
	}

	absPath := filepath.Join(r.cfg.Journal.ChartDir, relPath)
	if err := os.WriteFile(absPath, blob, 0o644); err != nil {
		return "", fmt.Errorf("failed to write chart %s: %w", absPath, err)
	}

	r.log.InfoContext(ctx, "Saved chart screenshot",
		logger.StringField("path", relPath),
		logger.IntField("bytes", len(blob)),
	)
	return relPath, nil
}
