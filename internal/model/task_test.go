package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		title       string
		description string
		wantErr     error
	}{
		{name: "valid", id: 1, title: "Buy milk", description: "two litres"},
		{name: "empty description", id: 2, title: "Buy milk"},
		{name: "empty title", id: 1, title: "", wantErr: ErrEmptyTitle},
		{name: "whitespace title", id: 1, title: " \t ", wantErr: ErrEmptyTitle},
		{name: "title at limit", id: 1, title: strings.Repeat("a", 200)},
		{name: "title too long", id: 1, title: strings.Repeat("a", 201), wantErr: ErrTitleTooLong},
		{name: "multibyte title at limit", id: 1, title: strings.Repeat("é", 200)},
		{name: "description at limit", id: 1, title: "t", description: strings.Repeat("d", 1000)},
		{name: "description too long", id: 1, title: "t", description: strings.Repeat("d", 1001), wantErr: ErrDescriptionTooLong},
		{name: "invalid utf-8 title", id: 1, title: "bad\xffbyte", wantErr: ErrTitleEncoding},
		{name: "invalid utf-8 description", id: 1, title: "t", description: "\xc3(", wantErr: ErrDescriptionEncoding},
		{name: "zero id", id: 0, title: "t", wantErr: ErrInvalidID},
		{name: "negative id", id: -5, title: "t", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := New(tt.id, tt.title, tt.description, false)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, task.ID)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.description, task.Description)
			assert.False(t, task.Completed)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "Title cannot be empty or contain only whitespace", ErrEmptyTitle.Error())
	assert.Equal(t, "Title must be 200 characters or less", ErrTitleTooLong.Error())
	assert.Equal(t, "Description must be 1000 characters or less", ErrDescriptionTooLong.Error())
	assert.Equal(t, "Task ID must be a positive integer", ErrInvalidID.Error())
}

func TestTask_Apply(t *testing.T) {
	base := Task{ID: 3, Title: "Old", Description: "old desc"}

	t.Run("title only", func(t *testing.T) {
		got, err := base.Apply(TaskPatch{Title: strPtr("  New  ")})
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "old desc", got.Description)
		assert.False(t, got.Completed)
	})

	t.Run("explicit empty description", func(t *testing.T) {
		got, err := base.Apply(TaskPatch{Description: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "Old", got.Title)
		assert.Empty(t, got.Description)
	})

	t.Run("completed only", func(t *testing.T) {
		got, err := base.Apply(TaskPatch{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.Equal(t, "Old", got.Title)
	})

	t.Run("invalid field rejects whole patch", func(t *testing.T) {
		got, err := base.Apply(TaskPatch{
			Title:       strPtr("Fine"),
			Description: strPtr(strings.Repeat("x", 1001)),
			Completed:   boolPtr(true),
		})
		assert.ErrorIs(t, err, ErrDescriptionTooLong)
		assert.Equal(t, base, got)
	})

	t.Run("invalid utf-8 title", func(t *testing.T) {
		got, err := base.Apply(TaskPatch{Title: strPtr("\xfe\xff")})
		assert.ErrorIs(t, err, ErrTitleEncoding)
		assert.Equal(t, base, got)
	})

	t.Run("empty patch", func(t *testing.T) {
		got, err := base.Apply(TaskPatch{})
		require.NoError(t, err)
		assert.Equal(t, base, got)
	})
}
