// Package export produces XLSX workbooks from stored expenses.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gastosbot/gastos-tracker/internal/repository"
)

// Service is a tiny façade over the expense repository that produces
// XLSX bytes for exports.
type Service struct {
	expenses repository.ExpenseRepository
	logger   *slog.Logger
}

func NewService(expenses repository.ExpenseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{expenses: expenses, logger: logger}
}

// ExportExpensesXLSX returns an XLSX workbook (as bytes) for the
// user's expenses over the last `days` days. days <= 0 exports
// everything.
func (s *Service) ExportExpensesXLSX(ctx context.Context, userID int64, days int) ([]byte, error) {
	start := time.Now()

	recs, err := s.expenses.ListByUser(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Gastos"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Fecha de Registro",
		"Fecha del Comprobante",
		"Descripción",
		"Categoría",
		"Moneda",
		"Monto",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	var total float64
	for _, r := range recs {
		write(1, row, r.CreatedAt.Format("2006-01-02"))
		write(2, row, r.TxDate)
		write(3, row, truncate(r.Description, 140))
		write(4, row, r.Category)
		write(5, row, r.Currency)
		write(6, row, r.Amount)
		total += r.Amount
		row++
	}

	write(5, row, "Total")
	write(6, row, total)

	_ = f.SetColWidth(sheet, "A", "B", 16)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "D", "D", 18)
	_ = f.SetColWidth(sheet, "E", "F", 10)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID,
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
