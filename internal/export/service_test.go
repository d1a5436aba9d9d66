package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gastosbot/gastos-tracker/internal/common"
	"github.com/gastosbot/gastos-tracker/internal/entity"
)

type listRepo struct {
	rows []*entity.Expense
	err  error
}

func (l *listRepo) ListByUser(context.Context, int64, int) ([]*entity.Expense, error) {
	return l.rows, l.err
}
func (l *listRepo) Create(context.Context, *entity.Expense) error { return nil }
func (l *listRepo) GetByID(context.Context, uuid.UUID) (*entity.Expense, error) {
	return nil, common.ErrNotFound
}
func (l *listRepo) Update(context.Context, *entity.Expense) error { return nil }
func (l *listRepo) Delete(context.Context, uuid.UUID) error       { return nil }
func (l *listRepo) SummaryByCategory(context.Context, int64, int) ([]entity.CategorySummary, error) {
	return nil, nil
}
func (l *listRepo) Stats(context.Context, int64, int) (*entity.ExpenseStats, error) {
	return nil, nil
}

func TestExportExpensesXLSX(t *testing.T) {
	created := time.Date(2024, 11, 29, 18, 0, 0, 0, time.UTC)
	repo := &listRepo{rows: []*entity.Expense{
		{
			ID:          uuid.New(),
			UserID:      1,
			Description: "Compra en TIENDA EJEMPLO",
			Amount:      80.00,
			Currency:    "S/.",
			Category:    "Alimentación",
			TxDate:      "29/11/2024",
			CreatedAt:   created,
		},
		{
			ID:          uuid.New(),
			UserID:      1,
			Description: "taxi al aeropuerto",
			Amount:      45.50,
			Currency:    "S/.",
			Category:    "Transporte",
			CreatedAt:   created,
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportExpensesXLSX(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("ExportExpensesXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	const sheet = "Gastos"
	if v, _ := f.GetCellValue(sheet, "C1"); v != "Descripción" {
		t.Errorf("C1 = %q, want Descripción", v)
	}
	if v, _ := f.GetCellValue(sheet, "C2"); v != "Compra en TIENDA EJEMPLO" {
		t.Errorf("C2 = %q", v)
	}
	if v, _ := f.GetCellValue(sheet, "B2"); v != "29/11/2024" {
		t.Errorf("B2 = %q, want 29/11/2024", v)
	}
	if v, _ := f.GetCellValue(sheet, "D3"); v != "Transporte" {
		t.Errorf("D3 = %q, want Transporte", v)
	}
	// totals row under the last expense
	if v, _ := f.GetCellValue(sheet, "E4"); v != "Total" {
		t.Errorf("E4 = %q, want Total", v)
	}
	if v, _ := f.GetCellValue(sheet, "F4"); v != "125.5" {
		t.Errorf("F4 = %q, want 125.5", v)
	}
}

func TestExportExpensesXLSXEmpty(t *testing.T) {
	svc := NewService(&listRepo{}, nil)
	data, err := svc.ExportExpensesXLSX(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("ExportExpensesXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Gastos", "F2"); v != "0" {
		t.Errorf("F2 = %q, want 0", v)
	}
}

func TestExportExpensesXLSXRepositoryError(t *testing.T) {
	svc := NewService(&listRepo{err: errors.New("boom")}, nil)
	if _, err := svc.ExportExpensesXLSX(context.Background(), 1, 0); err == nil {
		t.Fatal("expected error")
	}
}
