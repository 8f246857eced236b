package llm

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/loanguard/loanguard/constants"
)

// BuildExtractionJSONSchema describes the full response contract,
// including enum taxonomies, as a generic map. It documents the wire
// format for request construction and tooling; response validation uses
// the looser envelope schema below so that field-level noise is left to
// coercion rather than rejected wholesale.
func BuildExtractionJSONSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}
	nullableNumber := map[string]any{"type": []string{"number", "null"}}

	deadline := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"description":           nullableString,
			"frequency":             map[string]any{"type": []string{"string", "null"}, "enum": appendNull(constants.FrequencyStrings())},
			"days_after_period_end": nullableNumber,
			"day_of_month":          nullableNumber,
		},
	}
	threshold := map[string]any{
		"type": []string{"object", "null"},
		"properties": map[string]any{
			"metric":          nullableString,
			"operator":        map[string]any{"type": []string{"string", "null"}, "enum": appendNull([]string{">=", "<=", ">", "<", "==", "between"})},
			"value":           nullableNumber,
			"secondary_value": nullableNumber,
			"unit":            nullableString,
		},
	}
	requirement := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":                  nullableString,
			"category":               map[string]any{"type": []string{"string", "null"}, "enum": appendNull(constants.CategoryStrings())},
			"description":            nullableString,
			"plain_language_summary": nullableString,
			"original_text":          nullableString,
			"document_reference":     nullableString,
			"deadline":               deadline,
			"threshold":              threshold,
			"severity":               map[string]any{"type": []string{"string", "null"}, "enum": appendNull([]string{"critical", "high", "medium", "low"})},
			"cure_period_days":       nullableNumber,
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"loan_info": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"borrower_name":    nullableString,
					"lender_name":      nullableString,
					"property_name":    nullableString,
					"loan_amount":      nullableNumber,
					"origination_date": nullableString,
					"maturity_date":    nullableString,
				},
			},
			"requirements": map[string]any{
				"type":  "array",
				"items": requirement,
			},
		},
		"required": []string{"requirements"},
	}
}

// envelopeSchema is the structural contract a located payload must meet
// before coercion: a JSON object whose loan_info is an object or null and
// whose requirements, when present, is an array. Anything stricter
// (enums, field types) is deliberately left to per-field coercion.
const envelopeSchema = `{
	"type": "object",
	"properties": {
		"loan_info":    {"type": ["object", "null"]},
		"requirements": {"type": ["array", "null"]}
	}
}`

var (
	envelopeOnce     sync.Once
	envelopeCompiled *jsonschema.Schema
	envelopeErr      error
)

// ValidateEnvelope checks a decoded payload against the structural
// envelope contract.
func ValidateEnvelope(parsed map[string]any) error {
	envelopeOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("envelope.json", bytes.NewReader([]byte(envelopeSchema))); err != nil {
			envelopeErr = fmt.Errorf("add schema: %w", err)
			return
		}
		envelopeCompiled, envelopeErr = compiler.Compile("envelope.json")
	})
	if envelopeErr != nil {
		return envelopeErr
	}
	if err := envelopeCompiled.Validate(parsed); err != nil {
		return fmt.Errorf("payload does not match envelope: %w", err)
	}
	return nil
}

func appendNull(values []string) []any {
	out := make([]any, 0, len(values)+1)
	for _, v := range values {
		out = append(out, v)
	}
	return append(out, nil)
}
