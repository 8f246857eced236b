package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/loanguard/loanguard/internal/common"
)

var reFencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// LocatePayload finds the structured-data span inside free-form response
// text: a fenced code block first, otherwise the outermost brace-delimited
// span. A response with neither fails with ErrPayloadNotFound.
func LocatePayload(response string) (string, error) {
	if m := reFencedJSON.FindStringSubmatch(response); m != nil {
		return m[1], nil
	}
	start := strings.IndexByte(response, '{')
	end := strings.LastIndexByte(response, '}')
	if start < 0 || end < start {
		return "", common.ErrPayloadNotFound
	}
	return response[start : end+1], nil
}

// DecodePayload decodes a located span. A decode failure is
// ErrPayloadMalformed, distinct from not-found, so callers can tell
// missing-vs-broken apart.
func DecodePayload(payload string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPayloadMalformed, err)
	}
	return m, nil
}

// ParseResponse locates, structurally validates, and decodes the payload
// embedded in raw response text. Both failure modes abort the whole
// extraction; field-level issues are handled later by coercion.
func ParseResponse(response string) (map[string]any, error) {
	span, err := LocatePayload(response)
	if err != nil {
		return nil, err
	}
	parsed, err := DecodePayload(span)
	if err != nil {
		return nil, err
	}
	if err := ValidateEnvelope(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrPayloadMalformed, err)
	}
	return parsed, nil
}
