// Package ocr shells out to tesseract to read receipt photos. The
// extraction heuristics live elsewhere; this package only produces
// plain text.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gastosbot/gastos-tracker/constants"
	"github.com/gastosbot/gastos-tracker/internal/common"
)

// Engine runs tesseract over image files.
type Engine struct {
	cfg    common.OCRConfig
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg common.OCRConfig, logger *slog.Logger) *Engine {
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Languages == "" {
		cfg.Languages = "spa+eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner; tests use this.
func (e *Engine) WithRunner(r Runner) *Engine {
	e.runner = r
	return e
}

// Recognize OCRs one image and returns the normalized text.
func (e *Engine) Recognize(ctx context.Context, path string) (string, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsAllowedExt(ext) {
		return "", common.NewAppError("OCR_UNSUPPORTED", fmt.Sprintf("unsupported image type %q", ext), common.ErrInvalidInput)
	}

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	// tesseract <file> stdout -l <langs>
	args := []string{path, "stdout", "-l", e.cfg.Languages}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, e.logger, args...)
	if err != nil {
		return "", common.NewAppError("OCR_FAILED", truncate(string(errb), 512), err)
	}

	txt := Normalize(string(out))
	e.logger.Debug("ocr complete", "path", path, "text_bytes", len(txt))
	return txt, nil
}
