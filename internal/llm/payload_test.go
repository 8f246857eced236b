package llm

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/loanguard/loanguard/internal/common"
)

const sampleEnvelope = `{"loan_info": {"property_name": "Park Plaza"}, "requirements": []}`

func TestLocatePayload(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  error
	}{
		{
			"fenced json block",
			"Here are the results:\n```json\n" + sampleEnvelope + "\n```\nDone.",
			sampleEnvelope,
			nil,
		},
		{
			"fenced block without language tag",
			"```\n" + sampleEnvelope + "\n```",
			sampleEnvelope,
			nil,
		},
		{
			"bare braces",
			"Sure thing. " + sampleEnvelope + " Let me know if you need more.",
			sampleEnvelope,
			nil,
		},
		{
			"payload alone",
			sampleEnvelope,
			sampleEnvelope,
			nil,
		},
		{
			"no structured span",
			"I could not find any requirements in this document.",
			"",
			common.ErrPayloadNotFound,
		},
		{
			"empty response",
			"",
			"",
			common.ErrPayloadNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocatePayload(tt.response)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LocatePayload() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LocatePayload() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LocatePayload() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseResponseFencedAndBareAgree(t *testing.T) {
	fenced, err := ParseResponse("```json\n" + sampleEnvelope + "\n```")
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}
	bare, err := ParseResponse("preamble " + sampleEnvelope + " postamble")
	if err != nil {
		t.Fatalf("bare: %v", err)
	}
	if !reflect.DeepEqual(fenced, bare) {
		t.Errorf("fenced and bare parses differ:\n%v\n%v", fenced, bare)
	}
}

func TestParseResponseMalformedJSON(t *testing.T) {
	_, err := ParseResponse(`{"loan_info": {"property_name": "Park Plaza",}`)
	if !errors.Is(err, common.ErrPayloadMalformed) {
		t.Fatalf("error = %v, want ErrPayloadMalformed", err)
	}
	if errors.Is(err, common.ErrPayloadNotFound) {
		t.Fatal("malformed payload must not also report not-found")
	}
}

func TestParseResponseEnvelopeMismatch(t *testing.T) {
	// requirements must be an array when present
	_, err := ParseResponse(`{"requirements": "none"}`)
	if !errors.Is(err, common.ErrPayloadMalformed) {
		t.Fatalf("error = %v, want ErrPayloadMalformed", err)
	}
}

func TestParseResponseToleratesUnknownEnumLabels(t *testing.T) {
	// structural validation must not reject field-level garbage; that is
	// coercion's job
	raw := `{"requirements": [{"title": "X", "category": "galactic", "severity": 17}]}`
	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if _, ok := parsed["requirements"]; !ok {
		t.Fatal("requirements key lost in parse")
	}
}

func TestDecodePayloadIdempotentSpan(t *testing.T) {
	span, err := LocatePayload(sampleEnvelope)
	if err != nil {
		t.Fatalf("LocatePayload() error = %v", err)
	}
	again, err := LocatePayload(span)
	if err != nil {
		t.Fatalf("second LocatePayload() error = %v", err)
	}
	if span != again {
		t.Errorf("locating an already-bare span changed it: %q vs %q", span, again)
	}
}

func TestBuildLoanProfileAssignsSequentialIDs(t *testing.T) {
	raw := `{"requirements": [` +
		`{"title": "First"},{"title": "Second"},{"title": "Third"},` +
		`{"title": "Fourth"},{"title": "Fifth"},{"title": "Sixth"},` +
		`{"title": "Seventh"},{"title": "Eighth"},{"title": "Ninth"},` +
		`{"title": "Tenth"},{"title": "Eleventh"},{"title": "Twelfth"}]}`
	parsed, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	profile := BuildLoanProfile(parsed, "LOAN-7")
	if len(profile.Requirements) != 12 {
		t.Fatalf("got %d requirements, want 12", len(profile.Requirements))
	}
	for i, req := range profile.Requirements {
		want := fmt.Sprintf("REQ-%03d", i+1)
		if req.ID != want {
			t.Errorf("requirement %d id = %q, want %q", i, req.ID, want)
		}
	}
}
