package domain_test

import (
	"testing"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()

		planned := domain.PlannedTask{
			Name:        "Design",
			Category:    "Plan",
			Start:       "2024-01-02",
			End:         "2024-01-10",
			Responsible: "Ana",
		}

		task, err := domain.NewTask(42, planned)
		require.NoError(t, err)
		assert.Equal(t, int64(42), task.ProjectID)
		assert.Equal(t, "Design", task.Name)
		assert.Equal(t, "Plan", task.Category)
		assert.Equal(t, "2024-01-02", task.Start)
		assert.Equal(t, "2024-01-10", task.End)
		assert.Equal(t, "Ana", task.Responsible)
		assert.Equal(t, "", task.Dependencies, "dependencies default to empty string")
	})

	t.Run("missing project", func(t *testing.T) {
		t.Parallel()

		task, err := domain.NewTask(0, domain.PlannedTask{Name: "Design"})
		assert.Nil(t, task)
		assert.ErrorIs(t, err, domain.ErrMissingTaskProject)
	})

	t.Run("empty name is accepted", func(t *testing.T) {
		t.Parallel()

		// Lenient normalization defaults missing names to ""; such tasks
		// must persist like any other defaulted field.
		task, err := domain.NewTask(42, domain.PlannedTask{})
		require.NoError(t, err)
		assert.Equal(t, "", task.Name)
		assert.Equal(t, int64(42), task.ProjectID)
	})
}
