package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		category     Category
		wantPriority Priority
	}{
		{
			name:         "urgent tasks start high priority",
			text:         "call bank",
			category:     CategoryUrgent,
			wantPriority: PriorityHigh,
		},
		{
			name:         "later tasks start medium priority",
			text:         "buy milk",
			category:     CategoryLater,
			wantPriority: PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(tt.text, tt.category)
			assert.Equal(t, tt.text, task.Text)
			assert.Equal(t, tt.category, task.Category)
			assert.Equal(t, tt.wantPriority, task.Priority)
			assert.NotEmpty(t, task.ID)
			assert.False(t, task.CreatedAt.IsZero())
		})
	}
}

func TestTaskIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		task := NewTask("x", CategoryLater)
		require.False(t, seen[task.ID])
		seen[task.ID] = true
	}
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryUrgent.Valid())
	assert.True(t, CategoryLater.Valid())
	assert.True(t, CategoryCompleted.Valid())
	assert.False(t, Category("someday").Valid())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("extreme").Valid())
}
