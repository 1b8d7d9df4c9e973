package service

import (
	"context"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, userRepository: userRepository}
}

// ListTasks returns the caller's visible tasks plus the four dashboard
// counts. Admins see every task; members only tasks they are assigned to.
// The optional status filter applies on top of the role scope.
func (s *TaskService) ListTasks(ctx context.Context, caller domain.User, status *domain.TaskStatus) ([]domain.Task, domain.StatusSummary, error) {
	scope := domain.TaskFilter{}
	if !caller.IsAdmin() {
		scope.AssignedTo = caller.ID
	}

	filter := scope
	filter.Status = status

	tasks, err := s.taskRepository.List(ctx, filter)
	if err != nil {
		return nil, domain.StatusSummary{}, err
	}

	if err := s.resolveAssignees(ctx, tasks); err != nil {
		return nil, domain.StatusSummary{}, err
	}

	summary, err := s.statusSummary(ctx, scope)
	if err != nil {
		return nil, domain.StatusSummary{}, err
	}

	return tasks, summary, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	tasks := []domain.Task{task}
	if err := s.resolveAssignees(ctx, tasks); err != nil {
		return domain.Task{}, err
	}

	return tasks[0], nil
}

func (s *TaskService) CreateTask(ctx context.Context, caller domain.User, input domain.CreateTaskInput) (domain.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	task := domain.Task{
		Title:         input.Title,
		Description:   input.Description,
		Priority:      priority,
		Status:        domain.TaskStatusPending,
		DueDate:       input.DueDate,
		AssignedTo:    input.AssignedTo,
		CreatedBy:     caller.ID,
		Attachments:   input.Attachments,
		TodoChecklist: input.TodoChecklist,
		Progress:      0,
	}

	return s.taskRepository.Create(ctx, task)
}

// UpdateTask applies a full edit. Absent fields keep their stored value;
// fields explicitly supplied are applied even when empty, so a caller can
// clear a description or unassign everyone. No ownership check runs here.
func (s *TaskService) UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.AssignedToSet {
		task.AssignedTo = input.AssignedTo
	}
	if input.AttachmentsSet {
		task.Attachments = input.Attachments
	}
	if input.ChecklistSet {
		// The full edit stores the checklist verbatim; only the checklist
		// endpoint re-derives progress and status.
		task.TodoChecklist = input.TodoChecklist
	}

	return s.taskRepository.Update(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepository.Delete(ctx, id)
}

// UpdateTaskStatus sets the status directly. Only an assignee or an admin
// may do this. Completing a task force-checks every checklist item.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, caller domain.User, id string, status domain.TaskStatus) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if !task.IsAssignedTo(caller.ID) && !caller.IsAdmin() {
		return domain.Task{}, domain.ErrNotAuthorized
	}

	task.ApplyStatus(status)

	return s.taskRepository.Update(ctx, task)
}

// UpdateTaskChecklist replaces the checklist and derives progress and status
// from the new items. Only an assignee or an admin may do this.
func (s *TaskService) UpdateTaskChecklist(ctx context.Context, caller domain.User, id string, items []domain.TodoItem) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if !task.IsAssignedTo(caller.ID) && !caller.IsAdmin() {
		return domain.Task{}, domain.ErrNotAuthorized
	}

	task.ReplaceChecklist(items)

	updated, err := s.taskRepository.Update(ctx, task)
	if err != nil {
		return domain.Task{}, err
	}

	tasks := []domain.Task{updated}
	if err := s.resolveAssignees(ctx, tasks); err != nil {
		return domain.Task{}, err
	}

	return tasks[0], nil
}

func (s *TaskService) DashboardData(ctx context.Context) (domain.StatusSummary, error) {
	return s.statusSummary(ctx, domain.TaskFilter{})
}

func (s *TaskService) UserDashboardData(ctx context.Context, userID string) (domain.StatusSummary, error) {
	return s.statusSummary(ctx, domain.TaskFilter{AssignedTo: userID})
}

// statusSummary runs the four counts as independent queries. Concurrent
// writers can interleave between them; callers must not treat the counts as
// a consistent snapshot.
func (s *TaskService) statusSummary(ctx context.Context, scope domain.TaskFilter) (domain.StatusSummary, error) {
	all, err := s.taskRepository.Count(ctx, scope)
	if err != nil {
		return domain.StatusSummary{}, err
	}

	counts := make(map[domain.TaskStatus]int64, 3)
	for _, status := range []domain.TaskStatus{
		domain.TaskStatusPending,
		domain.TaskStatusInProgress,
		domain.TaskStatusCompleted,
	} {
		status := status
		filter := scope
		filter.Status = &status
		count, err := s.taskRepository.Count(ctx, filter)
		if err != nil {
			return domain.StatusSummary{}, err
		}
		counts[status] = count
	}

	return domain.StatusSummary{
		All:             all,
		PendingTasks:    counts[domain.TaskStatusPending],
		InProgressTasks: counts[domain.TaskStatusInProgress],
		CompletedTasks:  counts[domain.TaskStatusCompleted],
	}, nil
}

// resolveAssignees fills each task's Assignees projection from the user
// store, preserving AssignedTo order and skipping dangling references.
func (s *TaskService) resolveAssignees(ctx context.Context, tasks []domain.Task) error {
	idSet := make(map[string]struct{})
	for _, task := range tasks {
		for _, id := range task.AssignedTo {
			idSet[id] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.userRepository.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[string]domain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	for i := range tasks {
		refs := make([]domain.AssigneeRef, 0, len(tasks[i].AssignedTo))
		for _, id := range tasks[i].AssignedTo {
			user, ok := byID[id]
			if !ok {
				continue
			}
			refs = append(refs, domain.AssigneeRef{
				ID:              user.ID,
				Name:            user.Name,
				Email:           user.Email,
				ProfileImageURL: user.ProfileImageURL,
			})
		}
		tasks[i].Assignees = refs
	}

	return nil
}
