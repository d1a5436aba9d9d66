// Command extraer runs the field extractor over one receipt and prints
// the result as JSON. Input is either recognized text (-text, "-" for
// stdin) or an image OCR'd with tesseract (-image).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/gastosbot/gastos-tracker/internal/common"
	"github.com/gastosbot/gastos-tracker/internal/extract"
	"github.com/gastosbot/gastos-tracker/internal/ocr"
)

func main() {
	var (
		textPath  = flag.String("text", "", "path to a receipt text file, or - for stdin")
		imagePath = flag.String("image", "", "path to a receipt image to OCR")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	if (*textPath == "") == (*imagePath == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -text or -image is required")
		flag.Usage()
		os.Exit(2)
	}

	text, err := readInput(cfg, *textPath, *imagePath, logger)
	if err != nil {
		logger.Error("failed to read receipt", "error", err)
		os.Exit(1)
	}

	keywords := common.LoadKeywords(cfg.OCR.KeywordsPath, logger)
	fields := extract.New(extract.Config{Keywords: keywords}, logger).Extract(text)

	out, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func readInput(cfg *common.Config, textPath, imagePath string, logger *slog.Logger) (string, error) {
	if imagePath != "" {
		return ocr.NewEngine(cfg.OCR, logger).Recognize(context.Background(), imagePath)
	}
	if textPath == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(textPath)
	return string(b), err
}
