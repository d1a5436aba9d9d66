package common

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Keywords is the immutable keyword snapshot consumed by the extraction
// engine. Callers must not mutate a loaded snapshot; hot reload means
// building a fresh one and swapping it in whole.
type Keywords struct {
	Total  []string
	Vendor []string
	Date   []string
}

// DefaultKeywords returns the compiled-in keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Total:  []string{"total", "monto", "a pagar", "importe", "debe", "pago", "subtotal"},
		Vendor: []string{"tienda", "comercio", "empresa", "establecimiento", "negocio", "supermercado", "mercado"},
		Date:   []string{"fecha", "fecha de emisión", "expedición", "día"},
	}
}

// keywordsSchema constrains the on-disk document: every list is optional,
// but a present list must be a non-empty array of non-empty strings.
const keywordsSchema = `{
	"type": "object",
	"properties": {
		"ocr": {
			"type": "object",
			"properties": {
				"palabras_total":    {"$ref": "#/$defs/wordlist"},
				"palabras_vendedor": {"$ref": "#/$defs/wordlist"},
				"palabras_fecha":    {"$ref": "#/$defs/wordlist"}
			}
		}
	},
	"required": ["ocr"],
	"$defs": {
		"wordlist": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		}
	}
}`

type keywordsFile struct {
	OCR struct {
		PalabrasTotal    []string `json:"palabras_total"`
		PalabrasVendedor []string `json:"palabras_vendedor"`
		PalabrasFecha    []string `json:"palabras_fecha"`
	} `json:"ocr"`
}

// LoadKeywords reads keyword lists from a JSON resource. A missing, corrupt
// or schema-violating file is never fatal: the compiled-in defaults are
// substituted and a warning is logged. Lists absent from a valid file keep
// their defaults.
func LoadKeywords(path string, logger *slog.Logger) Keywords {
	if logger == nil {
		logger = slog.Default()
	}
	defaults := DefaultKeywords()

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("keyword config not found, using defaults", "path", path, "error", err)
		return defaults
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("keyword config is not valid JSON, using defaults", "path", path, "error", err)
		return defaults
	}

	if err := validateKeywords(doc); err != nil {
		logger.Warn("keyword config failed schema validation, using defaults", "path", path, "error", err)
		return defaults
	}

	var kf keywordsFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		logger.Warn("keyword config decode failed, using defaults", "path", path, "error", err)
		return defaults
	}

	kw := defaults
	if len(kf.OCR.PalabrasTotal) > 0 {
		kw.Total = lowerAll(kf.OCR.PalabrasTotal)
	}
	if len(kf.OCR.PalabrasVendedor) > 0 {
		kw.Vendor = lowerAll(kf.OCR.PalabrasVendedor)
	}
	if len(kf.OCR.PalabrasFecha) > 0 {
		kw.Date = lowerAll(kf.OCR.PalabrasFecha)
	}
	logger.Info("keyword config loaded",
		"path", path,
		"total", len(kw.Total), "vendor", len(kw.Vendor), "date", len(kw.Date),
	)
	return kw
}

func validateKeywords(doc any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("keywords.schema.json", strings.NewReader(keywordsSchema)); err != nil {
		return err
	}
	sch, err := compiler.Compile("keywords.schema.json")
	if err != nil {
		return err
	}
	return sch.Validate(doc)
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}
