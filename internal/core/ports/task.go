package ports

import (
	"context"
	"io"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

type TaskRepository interface {
	FindByID(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	Count(ctx context.Context, filter domain.TaskFilter) (int64, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	ListTasks(ctx context.Context, caller domain.User, status *domain.TaskStatus) ([]domain.Task, domain.StatusSummary, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	CreateTask(ctx context.Context, caller domain.User, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	UpdateTaskStatus(ctx context.Context, caller domain.User, id string, status domain.TaskStatus) (domain.Task, error)
	UpdateTaskChecklist(ctx context.Context, caller domain.User, id string, items []domain.TodoItem) (domain.Task, error)
	DashboardData(ctx context.Context) (domain.StatusSummary, error)
	UserDashboardData(ctx context.Context, userID string) (domain.StatusSummary, error)
}

type ReportService interface {
	ExportTasksReport(ctx context.Context, w io.Writer) error
	ExportUsersReport(ctx context.Context, w io.Writer) error
}
