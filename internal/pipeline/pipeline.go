// Package pipeline turns raw receipt input (text or image) into a
// stored expense.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gastosbot/gastos-tracker/internal/common"
	"github.com/gastosbot/gastos-tracker/internal/entity"
	"github.com/gastosbot/gastos-tracker/internal/extract"
	"github.com/gastosbot/gastos-tracker/internal/repository"
)

// Recognizer abstracts the OCR step so tests can feed canned text.
// Implementations return already-normalized text.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// Result pairs the stored expense with the raw extraction that
// produced it.
type Result struct {
	Expense *entity.Expense       `json:"expense"`
	Fields  extract.ReceiptFields `json:"fields"`
}

type Pipeline struct {
	extractor  *extract.Extractor
	recognizer Recognizer
	expenses   repository.ExpenseRepository
	logger     *slog.Logger
}

func New(extractor *extract.Extractor, recognizer Recognizer, expenses repository.ExpenseRepository, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		extractor:  extractor,
		recognizer: recognizer,
		expenses:   expenses,
		logger:     logger,
	}
}

// ProcessText extracts fields from receipt text and records the
// expense. Returns common.ErrAmountNotFound when no total could be
// read; nothing is stored in that case.
func (p *Pipeline) ProcessText(ctx context.Context, userID int64, text, imageURL string) (*Result, error) {
	fields := p.extractor.Extract(text)
	if fields.TotalAmount == nil {
		p.logger.Warn("receipt rejected, no total found", "user_id", userID)
		return nil, common.ErrAmountNotFound
	}

	ocrData, err := json.Marshal(fields)
	if err != nil {
		return nil, common.WrapError(err, "marshal extraction")
	}

	e := &entity.Expense{
		UserID:      userID,
		Description: fields.Description,
		Amount:      *fields.TotalAmount,
		Currency:    fields.CurrencySymbol,
		Category:    fields.Category,
		TxDate:      fields.TransactionDate,
		ImageURL:    imageURL,
		OCRData:     ocrData,
	}
	if err := p.expenses.Create(ctx, e); err != nil {
		return nil, err
	}

	p.logger.Info("expense recorded",
		"expense_id", e.ID.String(),
		"user_id", userID,
		"amount", e.Amount,
		"currency", e.Currency,
		"category", e.Category)
	return &Result{Expense: e, Fields: fields}, nil
}

// ProcessImage OCRs the image at path, then records the expense from
// the recognized text.
func (p *Pipeline) ProcessImage(ctx context.Context, userID int64, path, imageURL string) (*Result, error) {
	text, err := p.recognizer.Recognize(ctx, path)
	if err != nil {
		return nil, err
	}
	return p.ProcessText(ctx, userID, text, imageURL)
}
