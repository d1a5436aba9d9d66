package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gastosbot/gastos-tracker/constants"
)

const cleanReceipt = `TIENDA EJEMPLO
FECHA: 29/11/2024
Producto 1        S/. 50.00
Producto 2        S/. 30.00
TOTAL             S/. 80.00`

func TestExtractCleanReceipt(t *testing.T) {
	e := newTestExtractor()

	fields := e.Extract(cleanReceipt)

	if fields.TotalAmount == nil || *fields.TotalAmount != 80.00 {
		t.Fatalf("TotalAmount = %v, want 80.00", fields.TotalAmount)
	}
	if fields.CurrencySymbol != "S/." {
		t.Errorf("CurrencySymbol = %q, want %q", fields.CurrencySymbol, "S/.")
	}
	if fields.TransactionDate != "29/11/2024" {
		t.Errorf("TransactionDate = %q, want %q", fields.TransactionDate, "29/11/2024")
	}
	if fields.Vendor != "TIENDA EJEMPLO" {
		t.Errorf("Vendor = %q, want %q", fields.Vendor, "TIENDA EJEMPLO")
	}
	// The TOTAL line matches the priced-item pattern as well, so three
	// lines qualify: two products plus the total.
	wantItems := []string{
		"Producto 1        S/. 50.00",
		"Producto 2        S/. 30.00",
		"TOTAL             S/. 80.00",
	}
	if !reflect.DeepEqual(fields.LineItems, wantItems) {
		t.Errorf("LineItems = %v, want %v", fields.LineItems, wantItems)
	}
	if fields.Description == "" {
		t.Error("Description must not be empty")
	}
	if _, ok := constants.Canonicalize(fields.Category); !ok && fields.Category != string(constants.Otros) {
		t.Errorf("Category = %q is not in the closed set", fields.Category)
	}
}

func TestExtractNoTotal(t *testing.T) {
	e := newTestExtractor()

	fields := e.Extract("TIENDA SIN TOTAL\nProducto 1\nProducto 2")

	if fields.TotalAmount != nil {
		t.Errorf("TotalAmount = %v, want nil", *fields.TotalAmount)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestExtractor()

	for _, text := range []string{"", "   ", "\n\n\n", " \t \n  \t"} {
		fields := e.Extract(text)

		if fields.TotalAmount != nil {
			t.Errorf("Extract(%q): TotalAmount = %v, want nil", text, *fields.TotalAmount)
		}
		if fields.Vendor != DefaultVendor {
			t.Errorf("Extract(%q): Vendor = %q, want %q", text, fields.Vendor, DefaultVendor)
		}
		if fields.CurrencySymbol != constants.DefaultCurrencySymbol {
			t.Errorf("Extract(%q): CurrencySymbol = %q, want %q", text, fields.CurrencySymbol, constants.DefaultCurrencySymbol)
		}
		if fields.TransactionDate != "" {
			t.Errorf("Extract(%q): TransactionDate = %q, want empty", text, fields.TransactionDate)
		}
		if fields.Category != string(constants.Otros) {
			t.Errorf("Extract(%q): Category = %q, want %q", text, fields.Category, constants.Otros)
		}
		if fields.Description == "" {
			t.Errorf("Extract(%q): Description must not be empty", text)
		}
		if len(fields.LineItems) != 0 {
			t.Errorf("Extract(%q): LineItems = %v, want empty", text, fields.LineItems)
		}
	}
}

func TestExtractTotality(t *testing.T) {
	e := newTestExtractor()

	inputs := []string{
		"",
		"\x00\x01\x02 binary-ish \xff",
		"🧾🧾🧾 😀 🛒",
		strings.Repeat("ruido 12.34 TOTAL\n", 5000),
		"línea única sin nada útil",
		"- / - / - / -",
		strings.Repeat("x", 1<<16),
	}

	for _, text := range inputs {
		fields := e.Extract(text)
		if fields.Description == "" {
			t.Errorf("Extract(%.20q): Description empty", text)
		}
		if fields.Category == "" {
			t.Errorf("Extract(%.20q): Category empty", text)
		}
		if fields.CurrencySymbol == "" {
			t.Errorf("Extract(%.20q): CurrencySymbol empty", text)
		}
		if fields.TotalAmount != nil && *fields.TotalAmount <= 0 {
			t.Errorf("Extract(%.20q): found amount %v is not positive", text, *fields.TotalAmount)
		}
	}
}

func TestExtractDeterminism(t *testing.T) {
	e := newTestExtractor()

	for _, text := range []string{cleanReceipt, "", "TOTAL 12,50\nfecha 1/2/23", "🧾 $ 9.99"} {
		first := e.Extract(text)
		for i := 0; i < 3; i++ {
			if got := e.Extract(text); !reflect.DeepEqual(got, first) {
				t.Fatalf("Extract(%q) not deterministic: %+v vs %+v", text, got, first)
			}
		}
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a\n\n b ", []string{"a", "", "b"}},
		{"\n", []string{"", ""}},
	}

	for _, tt := range tests {
		got := Lines(tt.input)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Lines(%q): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNonEmptyLines(t *testing.T) {
	got := NonEmptyLines([]string{"a", "", "b", ""})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("NonEmptyLines: got %v", got)
	}
}
