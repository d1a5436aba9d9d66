// Package entity defines the persistence-level records shared by the
// repository, pipeline and server layers.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Expense is one stored purchase, either typed in by the user or
// extracted from a receipt photo.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int64           `json:"user_id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	// TxDate keeps the date string as it appeared on the receipt
	// ("29/11/2024", "15 de enero de 2024"); CreatedAt is the
	// authoritative ordering column.
	TxDate    string          `json:"tx_date,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	OCRData   json.RawMessage `json:"ocr_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CategorySummary is one row of a per-category spending breakdown.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// ExpenseStats aggregates a user's spending over a window.
type ExpenseStats struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}
