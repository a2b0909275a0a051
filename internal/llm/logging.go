package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// CallRecord captures one generation call for the audit log.
type CallRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Recorder persists call records. The store implements it; tests use an
// in-memory fake.
type Recorder interface {
	Record(ctx context.Context, rec CallRecord) error
}

// LoggingProvider is a decorator that records every generation call.
type LoggingProvider struct {
	inner    Provider
	recorder Recorder
}

// WithLogging wraps a Provider with call recording.
func WithLogging(p Provider, recorder Recorder) Provider {
	return &LoggingProvider{inner: p, recorder: recorder}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	rec := CallRecord{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}

	if resp != nil {
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.Model = resp.Model
		rec.ResponseBody = string(resp.Content)
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}

	// Never fail the generation call because the audit write failed.
	if recErr := l.recorder.Record(ctx, rec); recErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record LLM call: %v\n", recErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// renderRequest builds a readable representation of the request for the log.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.User)
	b.WriteString("\n")

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			b.WriteString(fmt.Sprintf("\n[schema: %s]\n", req.Schema.Name))
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}
