package enrichment

import (
	"strings"

	"ai-task-tracker/internal/model"
	"ai-task-tracker/pkg/claude"
)

const (
	promptTemplate = "Analyze the following task and suggest a priority level (High, Medium, Low) and estimated time to complete (in hours): "
	hoursMarker    = "hours"
)

// BuildPrompt embeds the title verbatim in a single human turn.
func BuildPrompt(title string) string {
	return claude.HumanPrompt + promptTemplate + title + claude.AIPrompt
}

// ParseCompletion scrapes a free-text completion.
//
// Priority is the first of High, Medium, Low (in that order) found anywhere in
// the text. The estimate is the last token before the first "hours", or the
// last token of the whole text when "hours" never occurs.
func ParseCompletion(text string) Result {
	var res Result

	for _, p := range model.Priorities {
		if strings.Contains(text, string(p)) {
			res.Priority = p
			break
		}
	}

	prefix, _, _ := strings.Cut(text, hoursMarker)
	if fields := strings.Fields(prefix); len(fields) > 0 {
		res.EstimatedTime = fields[len(fields)-1] + " " + hoursMarker
	}

	return res
}
