package enrichment_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"ai-task-tracker/internal/enrichment"
	"ai-task-tracker/internal/model"
	"ai-task-tracker/pkg/claude"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockClaude is a test implementation of claude.IClaude
type mockClaude struct {
	mu         sync.Mutex
	completion string
	err        error
	callCount  int
	lastPrompt string
}

func (m *mockClaude) Complete(ctx context.Context, req *claude.Request) (*claude.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	m.lastPrompt = req.Prompt
	if m.err != nil {
		return nil, m.err
	}
	return &claude.Response{Completion: m.completion}, nil
}

func (m *mockClaude) Model() string {
	return "claude-test"
}

func (m *mockClaude) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

func TestAnalyze_Success(t *testing.T) {
	client := &mockClaude{completion: " This task is Medium priority, about 3 hours"}
	uc := enrichment.New(&mockLogger{}, client, enrichment.Config{})

	res, err := uc.Analyze(context.Background(), "Write quarterly report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Priority != model.PriorityMedium || res.EstimatedTime != "3 hours" {
		t.Errorf("unexpected result: %+v", res)
	}
	if !strings.Contains(client.lastPrompt, "Write quarterly report") {
		t.Errorf("prompt did not embed the title: %q", client.lastPrompt)
	}
}

func TestAnalyze_Failures(t *testing.T) {
	upstream := errors.New("connection refused")

	tests := []struct {
		name   string
		client *mockClaude
		title  string
		want   error
	}{
		{name: "transport error", client: &mockClaude{err: upstream}, title: "a", want: upstream},
		{name: "empty completion", client: &mockClaude{completion: "  "}, title: "a", want: enrichment.ErrEmptyCompletion},
		{name: "empty title", client: &mockClaude{completion: "High"}, title: " ", want: enrichment.ErrEmptyTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := enrichment.New(&mockLogger{}, tt.client, enrichment.Config{})
			_, err := uc.Analyze(context.Background(), tt.title)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAnalyze_APIErrorIsWrapped(t *testing.T) {
	client := &mockClaude{err: &claude.APIError{StatusCode: 401, Message: "invalid x-api-key"}}
	uc := enrichment.New(&mockLogger{}, client, enrichment.Config{})

	_, err := uc.Analyze(context.Background(), "a")
	var apiErr *claude.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 401 {
		t.Errorf("expected wrapped APIError, got %v", err)
	}
}

func TestAnalyze_Cache(t *testing.T) {
	client := &mockClaude{completion: "High, 1 hours"}
	uc := enrichment.New(&mockLogger{}, client, enrichment.Config{CacheSize: 10, CacheTTL: time.Minute})
	ctx := context.Background()

	first, err := uc.Analyze(ctx, "Deploy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Analyze(ctx, "Deploy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if client.calls() != 1 {
		t.Errorf("expected 1 upstream call, got %d", client.calls())
	}

	uc.Analyze(ctx, "Other title")
	if client.calls() != 2 {
		t.Errorf("expected a new upstream call for a new title, got %d", client.calls())
	}
}

func TestAnalyze_FailuresAreNotCached(t *testing.T) {
	client := &mockClaude{err: errors.New("boom")}
	uc := enrichment.New(&mockLogger{}, client, enrichment.Config{CacheSize: 10, CacheTTL: time.Minute})
	ctx := context.Background()

	if _, err := uc.Analyze(ctx, "Deploy"); err == nil {
		t.Fatal("expected error")
	}

	client.mu.Lock()
	client.err = nil
	client.completion = "Low, 2 hours"
	client.mu.Unlock()

	res, err := uc.Analyze(ctx, "Deploy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Priority != model.PriorityLow {
		t.Errorf("expected fresh result, got %+v", res)
	}
}

func TestAnalyze_Throttle(t *testing.T) {
	client := &mockClaude{completion: "Low, 2 hours"}
	// 6 per minute gives a burst of 1.
	uc := enrichment.New(&mockLogger{}, client, enrichment.Config{RatePerMin: 6})
	ctx := context.Background()

	if _, err := uc.Analyze(ctx, "first"); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}
	if _, err := uc.Analyze(ctx, "second"); !errors.Is(err, enrichment.ErrThrottled) {
		t.Errorf("expected ErrThrottled, got %v", err)
	}
	if client.calls() != 1 {
		t.Errorf("throttled call must not reach upstream, got %d calls", client.calls())
	}
}
