package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-task-tracker/internal/enrichment"
	"ai-task-tracker/internal/model"
	"ai-task-tracker/internal/task"
	"ai-task-tracker/internal/task/repository/memory"
	"ai-task-tracker/internal/task/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockEnricher struct {
	result enrichment.Result
	err    error
	block  bool
}

func (m *mockEnricher) Analyze(ctx context.Context, title string) (enrichment.Result, error) {
	if m.block {
		<-ctx.Done()
		return enrichment.Result{}, ctx.Err()
	}
	return m.result, m.err
}

func newUseCase(enricher enrichment.UseCase, timeout time.Duration) task.UseCase {
	l := &mockLogger{}
	return usecase.New(l, memory.New(l), enricher, timeout)
}

func TestCreate_Enriched(t *testing.T) {
	uc := newUseCase(&mockEnricher{result: enrichment.Result{Priority: model.PriorityMedium, EstimatedTime: "3 hours"}}, time.Second)
	ctx := context.Background()

	out, err := uc.Create(ctx, task.CreateInput{Title: "Write report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Enriched {
		t.Error("expected Enriched=true")
	}
	if out.Task.Priority != model.PriorityMedium || out.Task.EstimatedTime != "3 hours" {
		t.Errorf("enrichment not merged: %+v", out.Task)
	}

	got, err := uc.Detail(ctx, out.Task.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got.Task != out.Task {
		t.Errorf("stored task differs from created: %+v vs %+v", got.Task, out.Task)
	}
}

func TestCreate_FallsBackWhenEnrichmentFails(t *testing.T) {
	tests := []struct {
		name     string
		enricher enrichment.UseCase
	}{
		{name: "enricher error", enricher: &mockEnricher{err: errors.New("dial tcp: connection refused")}},
		{name: "enricher hangs past timeout", enricher: &mockEnricher{block: true}},
		{name: "enrichment disabled", enricher: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.enricher, 20*time.Millisecond)

			out, err := uc.Create(context.Background(), task.CreateInput{Title: "Buy milk"})
			if err != nil {
				t.Fatalf("creation must not fail: %v", err)
			}
			if out.Enriched {
				t.Error("expected Enriched=false")
			}
			want := model.Task{ID: out.Task.ID, Title: "Buy milk"}
			if out.Task != want {
				t.Errorf("expected unenriched task %+v, got %+v", want, out.Task)
			}

			list, _ := uc.List(context.Background())
			if len(list.Tasks) != 1 {
				t.Errorf("expected the task to be stored, got %d tasks", len(list.Tasks))
			}
		})
	}
}

func TestCreate_EmptyTitle(t *testing.T) {
	uc := newUseCase(nil, 0)
	if _, err := uc.Create(context.Background(), task.CreateInput{Title: "  "}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestCreate_ConcurrentDistinctIDs(t *testing.T) {
	uc := newUseCase(&mockEnricher{result: enrichment.Result{Priority: model.PriorityLow}}, time.Second)
	ctx := context.Background()

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.Create(ctx, task.CreateInput{Title: "parallel"})
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- out.Task.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}

	list, _ := uc.List(ctx)
	if len(list.Tasks) != n || len(seen) != n {
		t.Errorf("expected %d tasks, listed %d, created %d", n, len(list.Tasks), len(seen))
	}
}

func TestUpdate(t *testing.T) {
	uc := newUseCase(&mockEnricher{result: enrichment.Result{Priority: model.PriorityHigh, EstimatedTime: "2 hours"}}, time.Second)
	ctx := context.Background()

	created, _ := uc.Create(ctx, task.CreateInput{Title: "Original"})
	id := created.Task.ID

	t.Run("replaces all fields and clears omitted ones", func(t *testing.T) {
		out, err := uc.Update(ctx, task.UpdateInput{ID: id, Title: "Renamed", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := model.Task{ID: id, Title: "Renamed", Completed: true}
		if out.Task != want {
			t.Errorf("expected %+v, got %+v", want, out.Task)
		}
		got, _ := uc.Detail(ctx, id)
		if got.Task != want {
			t.Errorf("stored task not replaced: %+v", got.Task)
		}
	})

	t.Run("matching body id is accepted", func(t *testing.T) {
		if _, err := uc.Update(ctx, task.UpdateInput{ID: id, BodyID: id, Title: "Again", Priority: model.PriorityLow}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		cases := []struct {
			in   task.UpdateInput
			want error
		}{
			{task.UpdateInput{ID: id, BodyID: "other", Title: "x"}, task.ErrIDMismatch},
			{task.UpdateInput{ID: id, Title: ""}, task.ErrEmptyTitle},
			{task.UpdateInput{ID: id, Title: "x", Priority: "Urgent"}, task.ErrInvalidPriority},
			{task.UpdateInput{ID: "missing", Title: "x"}, task.ErrTaskNotFound},
		}
		for _, c := range cases {
			if _, err := uc.Update(ctx, c.in); !errors.Is(err, c.want) {
				t.Errorf("Update(%+v): expected %v, got %v", c.in, c.want, err)
			}
		}
	})
}

func TestDetailAndDelete(t *testing.T) {
	uc := newUseCase(nil, 0)
	ctx := context.Background()

	created, _ := uc.Create(ctx, task.CreateInput{Title: "Temp"})

	if _, err := uc.Detail(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, "missing"); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}

	if err := uc.Delete(ctx, created.Task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := uc.Detail(ctx, created.Task.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}
}
