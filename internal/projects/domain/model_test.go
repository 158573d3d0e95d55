package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyReadDefaults(t *testing.T) {
	t.Run("fills missing description", func(t *testing.T) {
		p := Project{ID: "P1", Name: "Alpha"}
		p.ApplyReadDefaults()
		assert.Equal(t, DefaultDescription, p.Description)
		assert.Equal(t, []string{}, p.TaskIDs)
	})

	t.Run("keeps populated fields", func(t *testing.T) {
		p := Project{Description: "desc", TaskIDs: []string{"T1"}}
		p.ApplyReadDefaults()
		assert.Equal(t, "desc", p.Description)
		assert.Equal(t, []string{"T1"}, p.TaskIDs)
	})
}

func TestCreatedAtLabel(t *testing.T) {
	t.Run("unknown for zero timestamp", func(t *testing.T) {
		p := Project{}
		assert.Equal(t, UnknownCreatedAt, p.CreatedAtLabel())
	})

	t.Run("RFC3339 otherwise", func(t *testing.T) {
		p := Project{CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
		assert.Equal(t, "2026-01-02T03:04:05Z", p.CreatedAtLabel())
	})
}
