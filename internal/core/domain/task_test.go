package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

func TestProgressForChecklist(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.TodoItem
		expected int
	}{
		{name: "empty checklist", items: nil, expected: 0},
		{name: "none completed", items: []domain.TodoItem{{Text: "a"}, {Text: "b"}}, expected: 0},
		{
			name: "two of three completed rounds up",
			items: []domain.TodoItem{
				{Text: "a", Completed: true},
				{Text: "b", Completed: false},
				{Text: "c", Completed: true},
			},
			expected: 67,
		},
		{
			name: "one of three completed rounds down",
			items: []domain.TodoItem{
				{Text: "a", Completed: true},
				{Text: "b"},
				{Text: "c"},
			},
			expected: 33,
		},
		{
			name: "all completed",
			items: []domain.TodoItem{
				{Text: "a", Completed: true},
				{Text: "b", Completed: true},
			},
			expected: 100,
		},
		{
			name: "half completed",
			items: []domain.TodoItem{
				{Text: "a", Completed: true},
				{Text: "b"},
			},
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.ProgressForChecklist(tt.items))
		})
	}
}

func TestStatusForProgress(t *testing.T) {
	require.Equal(t, domain.TaskStatusPending, domain.StatusForProgress(0))
	require.Equal(t, domain.TaskStatusInProgress, domain.StatusForProgress(1))
	require.Equal(t, domain.TaskStatusInProgress, domain.StatusForProgress(67))
	require.Equal(t, domain.TaskStatusInProgress, domain.StatusForProgress(99))
	require.Equal(t, domain.TaskStatusCompleted, domain.StatusForProgress(100))
}

func TestTask_ReplaceChecklist_DerivesProgressAndStatus(t *testing.T) {
	task := domain.Task{Status: domain.TaskStatusCompleted, Progress: 100}

	task.ReplaceChecklist([]domain.TodoItem{
		{Text: "write handler", Completed: true},
		{Text: "write tests", Completed: false},
		{Text: "review", Completed: true},
	})

	require.Equal(t, 67, task.Progress)
	require.Equal(t, domain.TaskStatusInProgress, task.Status)
}

func TestTask_ReplaceChecklist_EmptyResetsToPending(t *testing.T) {
	task := domain.Task{
		Status:   domain.TaskStatusInProgress,
		Progress: 50,
		TodoChecklist: []domain.TodoItem{
			{Text: "old", Completed: true},
		},
	}

	task.ReplaceChecklist(nil)

	require.Equal(t, 0, task.Progress)
	require.Equal(t, domain.TaskStatusPending, task.Status)
	require.Empty(t, task.TodoChecklist)
}

func TestTask_ApplyStatus_CompletedForcesChecklist(t *testing.T) {
	task := domain.Task{
		Status:   domain.TaskStatusInProgress,
		Progress: 33,
		TodoChecklist: []domain.TodoItem{
			{Text: "a", Completed: true},
			{Text: "b"},
			{Text: "c"},
		},
	}

	task.ApplyStatus(domain.TaskStatusCompleted)

	require.Equal(t, domain.TaskStatusCompleted, task.Status)
	require.Equal(t, 100, task.Progress)
	for _, item := range task.TodoChecklist {
		require.True(t, item.Completed)
	}
}

func TestTask_ApplyStatus_NonCompletedLeavesChecklist(t *testing.T) {
	task := domain.Task{
		Status:   domain.TaskStatusCompleted,
		Progress: 100,
		TodoChecklist: []domain.TodoItem{
			{Text: "a", Completed: true},
			{Text: "b", Completed: true},
		},
	}

	// Moving away from Completed does not undo the forced completion.
	task.ApplyStatus(domain.TaskStatusInProgress)

	require.Equal(t, domain.TaskStatusInProgress, task.Status)
	require.Equal(t, 100, task.Progress)
	for _, item := range task.TodoChecklist {
		require.True(t, item.Completed)
	}
}

func TestTask_IsAssignedTo(t *testing.T) {
	task := domain.Task{AssignedTo: []string{
		"65f1a0b2c3d4e5f601234567",
		"65f1a0b2c3d4e5f601234568",
	}}

	require.True(t, task.IsAssignedTo("65f1a0b2c3d4e5f601234567"))
	require.True(t, task.IsAssignedTo("65f1a0b2c3d4e5f601234568"))
	require.False(t, task.IsAssignedTo("65f1a0b2c3d4e5f601234569"))
	require.False(t, task.IsAssignedTo(""))
}

func TestTask_CompletedTodoCount(t *testing.T) {
	task := domain.Task{TodoChecklist: []domain.TodoItem{
		{Text: "a", Completed: true},
		{Text: "b"},
		{Text: "c", Completed: true},
	}}

	require.Equal(t, 2, task.CompletedTodoCount())
	require.Equal(t, 0, (&domain.Task{}).CompletedTodoCount())
}
