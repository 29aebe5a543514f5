package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/offoffice/projectplanner/internal/domain"
)

// planPromptTemplate instructs the generator to answer with exactly the
// two top-level fields the extractor knows how to normalize. Generators
// routinely ignore the "JSON only" instruction, which is why extraction
// also scans for an embedded object.
const planPromptTemplate = `You are a project planning assistant for an architecture office.
Break the following project description into concrete scheduling tasks.

Project description:
{{.Description}}

Respond with JSON only, no commentary, using exactly this shape:
{"tasks": [{"name": "...", "category": "...", "start": "YYYY-MM-DD", "end": "YYYY-MM-DD", "responsible": "..."}], "categories": ["..."]}`

// promptData holds the fields injected into the plan prompt template.
type promptData struct {
	Description string
}

// Extractor turns raw generator output into a validated task plan.
// It owns the prompt construction, the call to the external generator,
// and the two-stage parse of whatever text comes back.
type Extractor struct {
	// generator is the injected external capability; nil means not configured
	generator Generator

	// logger is used for structured logging
	logger *slog.Logger

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template
}

// NewExtractor creates a new Extractor with the provided dependencies.
// A nil generator is allowed and makes every ExtractPlan call fail fast
// with ErrGeneratorUnavailable before any outbound call.
func NewExtractor(generator Generator, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}

	// The template is a compile-time constant, so parsing cannot fail.
	promptTemplate := template.Must(template.New("plan").Parse(planPromptTemplate))

	return &Extractor{
		generator:      generator,
		logger:         logger.With(slog.String("component", "extractor")),
		promptTemplate: promptTemplate,
	}
}

// ExtractPlan invokes the external generator with a planning prompt for the
// given project description and parses the response into a task plan.
//
// Returns:
//   - ErrGeneratorUnavailable if no generator is configured
//   - ErrGenerationFailed (wrapping the cause) if the generator call fails
//   - UnparseableError if the response contains no valid JSON object
func (e *Extractor) ExtractPlan(ctx context.Context, description string) (*domain.TaskPlan, error) {
	if e.generator == nil {
		e.logger.WarnContext(ctx, "plan extraction requested without a configured generator")
		return nil, ErrGeneratorUnavailable
	}

	prompt, err := e.createPrompt(description)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "requesting task plan from generator",
		slog.Int("description_length", len(description)),
		slog.Int("prompt_length", len(prompt)))

	raw, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		e.logger.ErrorContext(ctx, "generator call failed",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	plan, err := ParsePlan(raw)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to extract task plan from generator output",
			slog.String("error", err.Error()),
			slog.Int("raw_length", len(raw)))
		return nil, err
	}

	e.logger.InfoContext(ctx, "task plan extracted successfully",
		slog.Int("task_count", len(plan.Tasks)),
		slog.Int("category_count", len(plan.Categories)))
	return plan, nil
}

// createPrompt renders the planning prompt for the given description.
func (e *Extractor) createPrompt(description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("%w: project description cannot be empty", ErrGenerationFailed)
	}

	var promptBuffer bytes.Buffer
	if err := e.promptTemplate.Execute(&promptBuffer, promptData{Description: description}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return promptBuffer.String(), nil
}

// ParsePlan extracts a task plan from raw generator text.
//
// It first attempts a strict JSON parse of the entire trimmed text. If that
// fails, it searches for the first balanced outermost {...} span and parses
// that span alone. Both attempts failing yields an UnparseableError carrying
// the original text; the parsed candidate is then leniently normalized into
// a domain.TaskPlan.
func ParsePlan(raw string) (*domain.TaskPlan, error) {
	candidate, ok := decodeObject(strings.TrimSpace(raw))
	if !ok {
		if span, found := firstBalancedObject(raw); found {
			candidate, ok = decodeObject(span)
		}
	}
	if !ok {
		return nil, &UnparseableError{Raw: raw}
	}

	return NormalizePlan(candidate)
}

// NormalizePlan coerces a parsed candidate into a domain.TaskPlan.
//
// Normalization is deliberately lenient: missing or wrong-typed tasks and
// categories fields become empty lists, task records missing fields get
// empty strings, and records that are not objects are skipped. Partial
// success is preferred over whole-plan failure. The only rejection is a
// candidate that is not an object at all.
func NormalizePlan(candidate any) (*domain.TaskPlan, error) {
	obj, ok := candidate.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrInvalidPlan, candidate)
	}

	plan := &domain.TaskPlan{
		Tasks:      []domain.PlannedTask{},
		Categories: []string{},
	}

	if rawTasks, ok := obj["tasks"].([]any); ok {
		for _, rawTask := range rawTasks {
			record, ok := rawTask.(map[string]any)
			if !ok {
				continue
			}
			plan.Tasks = append(plan.Tasks, domain.PlannedTask{
				Name:         stringField(record, "name"),
				Category:     stringField(record, "category"),
				Start:        stringField(record, "start"),
				End:          stringField(record, "end"),
				Responsible:  stringField(record, "responsible"),
				Dependencies: stringField(record, "dependencies"),
			})
		}
	}

	if rawCategories, ok := obj["categories"].([]any); ok {
		for _, rawCategory := range rawCategories {
			if category, ok := rawCategory.(string); ok {
				plan.Categories = append(plan.Categories, category)
			}
		}
	}

	return plan, nil
}

// decodeObject attempts a strict JSON parse of s into an object.
func decodeObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// firstBalancedObject returns the first outermost brace-balanced {...}
// substring of s. Braces inside JSON strings are ignored, as are escaped
// quotes. Returns false if no balanced object exists.
func firstBalancedObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

// stringField reads a string-valued field from a decoded JSON object,
// defaulting to the empty string when the field is absent or not a string.
func stringField(record map[string]any, key string) string {
	value, ok := record[key].(string)
	if !ok {
		return ""
	}
	return value
}
