package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type memRecorder struct {
	records []CallRecord
	err     error
}

func (r *memRecorder) Record(_ context.Context, rec CallRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	inner := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok": true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	rec := &memRecorder{}
	p := WithLogging(inner, rec)

	ctx := WithPurpose(context.Background(), "summary")
	resp, err := p.Generate(ctx, Request{System: "sys", User: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Content) != `{"ok": true}` {
		t.Errorf("content = %s", resp.Content)
	}

	if len(rec.records) != 1 {
		t.Fatalf("records = %d, want 1", len(rec.records))
	}
	r := rec.records[0]
	if !r.Success {
		t.Error("success not recorded")
	}
	if r.Purpose != "summary" {
		t.Errorf("purpose = %q, want summary", r.Purpose)
	}
	if r.InputTokens != 12 || r.OutputTokens != 34 {
		t.Errorf("usage = %d/%d", r.InputTokens, r.OutputTokens)
	}
	if !strings.Contains(r.RequestBody, "hello") {
		t.Error("request body not captured")
	}
	if r.ResponseBody != `{"ok": true}` {
		t.Errorf("response body = %q", r.ResponseBody)
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	wantErr := &ErrRateLimit{}
	inner := NewMockProvider(MockResponse{Err: wantErr})
	rec := &memRecorder{}
	p := WithLogging(inner, rec)

	_, err := p.Generate(context.Background(), Request{User: "hi"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want the provider error untouched", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("records = %d, want 1", len(rec.records))
	}
	r := rec.records[0]
	if r.Success {
		t.Error("failure recorded as success")
	}
	if r.ErrorMessage == "" {
		t.Error("error message not captured")
	}
}

func TestLoggingProviderSurvivesRecorderFailure(t *testing.T) {
	inner := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	rec := &memRecorder{err: errors.New("disk full")}
	p := WithLogging(inner, rec)

	if _, err := p.Generate(context.Background(), Request{User: "hi"}); err != nil {
		t.Fatalf("audit failure must not fail the call: %v", err)
	}
}

func TestRenderRequestIncludesSchema(t *testing.T) {
	out := renderRequest(Request{
		System: "be brief",
		User:   "summarize",
		Schema: &Schema{Name: "recap", Definition: map[string]any{"type": "object"}},
	})

	for _, want := range []string{"[system]", "[user]", "[schema: recap]", "be brief", "summarize"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered request missing %q:\n%s", want, out)
		}
	}
}
