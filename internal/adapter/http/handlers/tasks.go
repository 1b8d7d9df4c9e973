package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/dto"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/mapper"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/validation"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
	"github.com/alipouryousefi/task-manager-back/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns the caller's visible tasks plus the status summary.
// The optional status query narrows the list on top of the role scope.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	var status *domain.TaskStatus
	if value := c.Query("status"); value != "" {
		parsed, ok := parseTaskStatus(value)
		if !ok {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
		status = &parsed
	}

	tasks, summary, err := h.taskService.ListTasks(c.Request.Context(), caller, status)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskListResponse(tasks, summary))
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to find task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFindTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequestBody, lang),
		)
		return
	}

	// Checked before struct binding so a scalar assignedTo reports its
	// own message instead of a generic unmarshal failure.
	if !validation.IsArrayField(raw, "assignedTo") {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgAssignedToNotArray, lang),
		)
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, taskPayloadMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), caller, input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgAssignedToNotArray, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// UpdateTask applies a full edit with per-field present-vs-absent
// semantics. Any authenticated caller may hit it; there is no ownership
// check by design of the exposed contract.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRequestBody, lang),
		)
		return
	}

	if validation.HasField(raw, "assignedTo") && !validation.IsArrayField(raw, "assignedTo") {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgAssignedToNotArray, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, taskPayloadMsgKey(err), lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.respondTaskWriteError(c, lang, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateTaskStatus sets the status directly; only an assignee or an admin
// may do so.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), caller, c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		h.respondTaskWriteError(c, lang, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// UpdateTaskChecklist replaces the checklist; progress and status are
// derived from the new items.
func (h *TaskHandler) UpdateTaskChecklist(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	var req dto.UpdateTaskChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	items := make([]domain.TodoItem, 0, len(req.TodoChecklist))
	for _, item := range req.TodoChecklist {
		items = append(items, domain.TodoItem{Text: item.Text, Completed: item.Completed})
	}

	task, err := h.taskService.UpdateTaskChecklist(c.Request.Context(), caller, c.Param("id"), items)
	if err != nil {
		h.respondTaskWriteError(c, lang, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetDashboardData(c *gin.Context) {
	lang := middleware.GetLang(c)

	summary, err := h.taskService.DashboardData(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute dashboard data", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatusSummaryItem(summary))
}

func (h *TaskHandler) GetUserDashboardData(c *gin.Context) {
	lang := middleware.GetLang(c)

	caller, ok := middleware.GetCaller(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgNotAuthenticated, lang),
		)
		return
	}

	summary, err := h.taskService.UserDashboardData(c.Request.Context(), caller.ID)
	if err != nil {
		zap.L().Error("failed to compute user dashboard data", zap.String("user_id", caller.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatusSummaryItem(summary))
}

func (h *TaskHandler) respondTaskWriteError(c *gin.Context, lang string, err error, failKey string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(
			http.StatusForbidden,
			apierrors.CreateError(http.StatusForbidden, apierrors.MsgNotAuthorizedTask, lang),
		)
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgAssignedToNotArray, lang),
		)
	default:
		zap.L().Error("task write failed", zap.String("task_id", c.Param("id")), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func taskPayloadMsgKey(err error) string {
	if errors.Is(err, validation.ErrAssignedToNotArray) {
		return apierrors.MsgAssignedToNotArray
	}
	return apierrors.MsgInvalidTaskPayload
}

func parseTaskStatus(value string) (domain.TaskStatus, bool) {
	switch domain.TaskStatus(value) {
	case domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusCompleted:
		return domain.TaskStatus(value), true
	default:
		return "", false
	}
}
