package model_test

import (
	"testing"

	"ai-task-tracker/internal/model"
)

func TestPriorityIsValid(t *testing.T) {
	tests := []struct {
		p    model.Priority
		want bool
	}{
		{model.PriorityHigh, true},
		{model.PriorityMedium, true},
		{model.PriorityLow, true},
		{"", false},
		{"high", false},
		{"Urgent", false},
	}

	for _, tt := range tests {
		if got := tt.p.IsValid(); got != tt.want {
			t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
