package generation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/offoffice/projectplanner/internal/generation"
	"github.com/offoffice/projectplanner/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan_PureJSON(t *testing.T) {
	t.Parallel()

	raw := `{"tasks":[{"name":"Design","category":"Plan","start":"2024-01-02","end":"2024-01-10","responsible":"Ana"}],"categories":["Plan"]}`

	plan, err := generation.ParsePlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Design", plan.Tasks[0].Name)
	assert.Equal(t, "Plan", plan.Tasks[0].Category)
	assert.Equal(t, "2024-01-02", plan.Tasks[0].Start)
	assert.Equal(t, "2024-01-10", plan.Tasks[0].End)
	assert.Equal(t, "Ana", plan.Tasks[0].Responsible)
	assert.Equal(t, "", plan.Tasks[0].Dependencies, "absent fields default to empty string")
	assert.Equal(t, []string{"Plan"}, plan.Categories)
}

func TestParsePlan_JSONSurroundedByProse(t *testing.T) {
	t.Parallel()

	raw := "Here you go:\n{\"tasks\":[],\"categories\":[]}\nDone."

	plan, err := generation.ParsePlan(raw)
	require.NoError(t, err)
	assert.Empty(t, plan.Tasks)
	assert.Empty(t, plan.Categories)
}

func TestParsePlan_CodeFencedJSON(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"tasks\":[{\"name\":\"Rohbau\"}],\"categories\":[\"Bau\"]}\n```"

	plan, err := generation.ParsePlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Rohbau", plan.Tasks[0].Name)
	assert.Equal(t, []string{"Bau"}, plan.Categories)
}

func TestParsePlan_BracesInsideStrings(t *testing.T) {
	t.Parallel()

	// The closing brace inside the string value must not end the span early.
	raw := `prefix {"tasks":[{"name":"curly } brace"}],"categories":[]} suffix`

	plan, err := generation.ParsePlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "curly } brace", plan.Tasks[0].Name)
}

func TestParsePlan_NoBalancedObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"plain refusal", "I cannot comply."},
		{"empty input", ""},
		{"unclosed object", `{"tasks": [`},
		{"no braces at all", "tasks: none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := generation.ParsePlan(tt.raw)
			assert.Nil(t, plan)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrUnparseable)

			// The original text is carried for diagnostics
			var unparseable *generation.UnparseableError
			require.ErrorAs(t, err, &unparseable)
			assert.Equal(t, tt.raw, unparseable.Raw)
		})
	}
}

func TestNormalizePlan_LenientDefaults(t *testing.T) {
	t.Parallel()

	t.Run("missing fields become empty lists", func(t *testing.T) {
		t.Parallel()

		plan, err := generation.NormalizePlan(map[string]any{})
		require.NoError(t, err)
		assert.NotNil(t, plan.Tasks)
		assert.Empty(t, plan.Tasks)
		assert.NotNil(t, plan.Categories)
		assert.Empty(t, plan.Categories)
	})

	t.Run("wrong-typed fields become empty lists", func(t *testing.T) {
		t.Parallel()

		plan, err := generation.NormalizePlan(map[string]any{
			"tasks":      "not a list",
			"categories": 42.0,
		})
		require.NoError(t, err)
		assert.Empty(t, plan.Tasks)
		assert.Empty(t, plan.Categories)
	})

	t.Run("task records missing fields default to empty strings", func(t *testing.T) {
		t.Parallel()

		plan, err := generation.NormalizePlan(map[string]any{
			"tasks": []any{
				map[string]any{"name": "Entwurf"},
			},
		})
		require.NoError(t, err)
		require.Len(t, plan.Tasks, 1)
		assert.Equal(t, "Entwurf", plan.Tasks[0].Name)
		assert.Equal(t, "", plan.Tasks[0].Category)
		assert.Equal(t, "", plan.Tasks[0].Start)
		assert.Equal(t, "", plan.Tasks[0].End)
		assert.Equal(t, "", plan.Tasks[0].Responsible)
	})

	t.Run("non-object task records are skipped", func(t *testing.T) {
		t.Parallel()

		plan, err := generation.NormalizePlan(map[string]any{
			"tasks": []any{
				"just a string",
				map[string]any{"name": "kept"},
				7.0,
			},
		})
		require.NoError(t, err)
		require.Len(t, plan.Tasks, 1)
		assert.Equal(t, "kept", plan.Tasks[0].Name)
	})

	t.Run("non-string categories are skipped", func(t *testing.T) {
		t.Parallel()

		plan, err := generation.NormalizePlan(map[string]any{
			"categories": []any{"Plan", 3.0, "Bau"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Plan", "Bau"}, plan.Categories)
	})

	t.Run("non-object candidate is rejected", func(t *testing.T) {
		t.Parallel()

		plan, err := generation.NormalizePlan([]any{"tasks"})
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, generation.ErrInvalidPlan)
	})
}

func TestExtractPlan_NoGeneratorConfigured(t *testing.T) {
	t.Parallel()

	extractor := generation.NewExtractor(nil, nil)

	plan, err := extractor.ExtractPlan(context.Background(), "build a house")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, generation.ErrGeneratorUnavailable)
}

func TestExtractPlan_Success(t *testing.T) {
	t.Parallel()

	mockGenerator := mocks.NewMockGeneratorWithResponse(
		"Sure, here is your plan:\n{\"tasks\":[{\"name\":\"Design\"}],\"categories\":[\"Plan\"]}",
	)
	extractor := generation.NewExtractor(mockGenerator, nil)

	plan, err := extractor.ExtractPlan(context.Background(), "build a house")
	require.NoError(t, err)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Design", plan.Tasks[0].Name)

	// The prompt must carry the project description
	require.Equal(t, 1, mockGenerator.GenerateCalls.Count)
	assert.Contains(t, mockGenerator.GenerateCalls.Prompts[0], "build a house")
}

func TestExtractPlan_GeneratorError(t *testing.T) {
	t.Parallel()

	callErr := errors.New("api quota exceeded")
	mockGenerator := mocks.NewMockGeneratorWithError(callErr)
	extractor := generation.NewExtractor(mockGenerator, nil)

	plan, err := extractor.ExtractPlan(context.Background(), "build a house")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestExtractPlan_UnparseableResponse(t *testing.T) {
	t.Parallel()

	mockGenerator := mocks.NewMockGeneratorWithResponse("I cannot comply.")
	extractor := generation.NewExtractor(mockGenerator, nil)

	plan, err := extractor.ExtractPlan(context.Background(), "build a house")
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, generation.ErrUnparseable)
}

func TestExtractPlan_EmptyDescription(t *testing.T) {
	t.Parallel()

	mockGenerator := mocks.NewMockGeneratorWithResponse("{}")
	extractor := generation.NewExtractor(mockGenerator, nil)

	plan, err := extractor.ExtractPlan(context.Background(), "   ")
	assert.Nil(t, plan)
	require.Error(t, err)

	// No outbound call is made for empty input
	assert.Equal(t, 0, mockGenerator.GenerateCalls.Count)
}
