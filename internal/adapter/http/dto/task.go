package dto

type TodoItem struct {
	Text      string `json:"text" binding:"required,max=500"`
	Completed bool   `json:"completed"`
}

type AssigneeItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

type TaskItem struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Description        *string        `json:"description,omitempty"`
	Priority           string         `json:"priority"`
	Status             string         `json:"status"`
	DueDate            string         `json:"due_date"`
	AssignedTo         []AssigneeItem `json:"assigned_to"`
	CreatedBy          string         `json:"created_by"`
	Attachments        []string       `json:"attachments"`
	TodoChecklist      []TodoItem     `json:"todo_checklist"`
	Progress           int            `json:"progress"`
	CompletedTodoCount int            `json:"completed_todo_count"`
	CreatedAt          string         `json:"created_at"`
	UpdatedAt          string         `json:"updated_at"`
}

type StatusSummaryItem struct {
	All             int64 `json:"all"`
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
}

type TaskListResponse struct {
	Tasks         []TaskItem        `json:"tasks"`
	StatusSummary StatusSummaryItem `json:"statusSummary"`
}

type CreateTaskRequest struct {
	Title         string     `json:"title" binding:"required,max=255"`
	Description   *string    `json:"description" binding:"omitempty,max=65535"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate       string     `json:"dueDate" binding:"required,datetime=2006-01-02"`
	AssignedTo    []string   `json:"assignedTo"`
	Attachments   []string   `json:"attachments"`
	TodoChecklist []TodoItem `json:"todoChecklist" binding:"omitempty,dive"`
}

type UpdateTaskRequest struct {
	Title         *string    `json:"title" binding:"omitempty,max=255"`
	Description   *string    `json:"description" binding:"omitempty,max=65535"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate       *string    `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	AssignedTo    []string   `json:"assignedTo"`
	Attachments   []string   `json:"attachments"`
	TodoChecklist []TodoItem `json:"todoChecklist" binding:"omitempty,dive"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending 'In Progress' Completed"`
}

type UpdateTaskChecklistRequest struct {
	TodoChecklist []TodoItem `json:"todoChecklist" binding:"required,dive"`
}
