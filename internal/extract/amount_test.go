package extract

import (
	"testing"
)

func newTestExtractor() *Extractor {
	return New(Config{}, nil)
}

func TestLastNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"TOTAL S/. 80.00", 80.00, true},
		{"TOTAL 80,50", 80.50, true},
		{"Producto A 500.00 3", 3, true},
		{"IMPORTE 1234", 1234, true},
		{"sin numeros", 0, false},
		{"", 0, false},
		{"80.00", 80.00, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := lastNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("lastNumber(%q): ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("lastNumber(%q): got %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAmountByKeyword(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name     string
		lines    []string
		expected float64
		ok       bool
	}{
		{
			name:     "first keyword line wins over later larger amount",
			lines:    []string{"RECIBO", "TOTAL 80.00", "Producto A 500.00"},
			expected: 80.00,
			ok:       true,
		},
		{
			name:     "last number within the keyword line wins",
			lines:    []string{"SUBTOTAL 70.00 IGV 12.60 82.60"},
			expected: 82.60,
			ok:       true,
		},
		{
			name:     "keyword line without a number does not stop the scan",
			lines:    []string{"TOTAL A PAGAR", "MONTO 45.90"},
			expected: 45.90,
			ok:       true,
		},
		{
			name:  "zero amount is not a find",
			lines: []string{"TOTAL 0.00"},
			ok:    false,
		},
		{
			name:  "no keywords",
			lines: []string{"BODEGA", "Producto 12.00"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.amountByKeyword(tt.lines, "")
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAmountByCurrencySuffix(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected float64
		ok       bool
	}{
		{
			name:     "sol suffix",
			lines:    []string{"Producto X", "S/. 42.50"},
			expected: 42.50,
			ok:       true,
		},
		{
			name:     "dollar suffix with trailing spaces",
			lines:    []string{"algo $ 13.99  "},
			expected: 13.99,
			ok:       true,
		},
		{
			name:  "symbol mid-line does not count",
			lines: []string{"S/. 42.50 gracias"},
			ok:    false,
		},
		{
			name:  "integer after symbol does not count",
			lines: []string{"S/. 42"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := amountByCurrencySuffix(tt.lines, "")
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAmountByLastDecimal(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
		ok       bool
	}{
		{
			name:     "last occurrence in document order, not the largest",
			text:     "ref 999.99 luego 12.34",
			expected: 12.34,
			ok:       true,
		},
		{
			name:     "comma separator",
			text:     "importe 45,90",
			expected: 45.90,
			ok:       true,
		},
		{
			name: "zero tail rejected",
			text: "12.50 y 0.00",
			ok:   false,
		},
		{
			name: "no two-decimal numbers",
			text: "cantidad 3 x 2",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := amountByLastDecimal(nil, tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAmountByMultiNumberLine(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected float64
		ok       bool
	}{
		{
			name:     "last number of the multi-number line",
			lines:    []string{"cabecera", "12.50 3 45.00"},
			expected: 45.00,
			ok:       true,
		},
		{
			name:     "reverse document order: bottom line wins",
			lines:    []string{"1.10 2.20", "3.30 4.40"},
			expected: 4.40,
			ok:       true,
		},
		{
			name:  "single number lines never match",
			lines: []string{"45.00", "30.00"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := amountByMultiNumberLine(tt.lines, "")
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExtractAmountPriorityOrder(t *testing.T) {
	e := newTestExtractor()

	// A keyword-adjacent amount beats an unrelated larger two-decimal
	// number that appears later in the document.
	text := "RECIBO\nTOTAL 80.00\nProducto A 500.00"
	got := e.extractAmount(Lines(text), text)
	if got == nil || *got != 80.00 {
		t.Fatalf("extractAmount = %v, want 80.00", got)
	}

	// With no keyword and no currency suffix, the last two-decimal number
	// in document order wins.
	text = "ref 999.99\nluego 12.34"
	got = e.extractAmount(Lines(text), text)
	if got == nil || *got != 12.34 {
		t.Fatalf("extractAmount = %v, want 12.34", got)
	}

	// Multi-number-line fallback fires when the document-order criterion
	// lands on a zero.
	text = "12.50 3 45.00\n0.00"
	got = e.extractAmount(Lines(text), text)
	if got == nil || *got != 45.00 {
		t.Fatalf("extractAmount = %v, want 45.00", got)
	}

	// All criteria exhausted: absence, never zero.
	text = "TIENDA SIN TOTAL\nProducto 1\nProducto 2"
	if got = e.extractAmount(Lines(text), text); got != nil {
		t.Fatalf("extractAmount = %v, want nil", *got)
	}
}
