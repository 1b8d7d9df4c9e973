package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appservice "github.com/alipouryousefi/task-manager-back/internal/app/service"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

func TestReportService_ExportTasksReport(t *testing.T) {
	dueDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	description := "Quarterly numbers"

	taskRepo := new(taskRepositoryMock)
	taskRepo.On("List", mock.Anything, domain.TaskFilter{}).Return([]domain.Task{
		{
			ID:          taskID,
			Title:       "Prepare report",
			Description: &description,
			Priority:    domain.TaskPriorityHigh,
			Status:      domain.TaskStatusInProgress,
			DueDate:     dueDate,
			AssignedTo:  []string{memberID},
		},
		{
			ID:       otherID,
			Title:    "Orphan task",
			Priority: domain.TaskPriorityLow,
			Status:   domain.TaskStatusPending,
			DueDate:  dueDate,
		},
	}, nil).Once()

	userRepo := new(userRepositoryMock)
	userRepo.On("FindByIDs", mock.Anything, []string{memberID}).Return([]domain.User{
		{ID: memberID, Name: "Member", Email: "member@example.com"},
	}, nil).Once()

	service := appservice.NewReportService(taskRepo, userRepo)

	var buf bytes.Buffer
	require.NoError(t, service.ExportTasksReport(context.Background(), &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Tasks Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t,
		[]string{"Task ID", "Title", "Description", "Priority", "Status", "Due Date", "Assigned To"},
		rows[0],
	)
	require.Equal(t,
		[]string{taskID, "Prepare report", "Quarterly numbers", "High", "In Progress", "2024-03-15", "Member (member@example.com)"},
		rows[1],
	)
	require.Equal(t, "Unassigned", rows[2][6])
}

func TestReportService_ExportUsersReport(t *testing.T) {
	userRepo := new(userRepositoryMock)
	userRepo.On("List", mock.Anything).Return([]domain.User{
		{ID: memberID, Name: "Member", Email: "member@example.com"},
		{ID: otherID, Name: "Idle", Email: "idle@example.com"},
	}, nil).Once()

	taskRepo := new(taskRepositoryMock)
	taskRepo.On("List", mock.Anything, domain.TaskFilter{}).Return([]domain.Task{
		{ID: "1", Status: domain.TaskStatusPending, AssignedTo: []string{memberID}},
		{ID: "2", Status: domain.TaskStatusInProgress, AssignedTo: []string{memberID}},
		{ID: "3", Status: domain.TaskStatusCompleted, AssignedTo: []string{memberID, "deadbeefdeadbeefdeadbeef"}},
	}, nil).Once()

	service := appservice.NewReportService(taskRepo, userRepo)

	var buf bytes.Buffer
	require.NoError(t, service.ExportUsersReport(context.Background(), &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("User Task Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t,
		[]string{"User name", "Email", "Total Assigned Tasks", "Pending Tasks", "In Progress Tasks", "Completed Tasks"},
		rows[0],
	)
	require.Equal(t,
		[]string{"Member", "member@example.com", "3", "1", "1", "1"},
		rows[1],
	)
	require.Equal(t,
		[]string{"Idle", "idle@example.com", "0", "0", "0", "0"},
		rows[2],
	)
}
