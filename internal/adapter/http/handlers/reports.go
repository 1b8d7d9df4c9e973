package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
	"github.com/alipouryousefi/task-manager-back/pkg/apierrors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(reportService ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) ExportTasksReport(c *gin.Context) {
	h.export(c, "tasks_report.xlsx", h.reportService.ExportTasksReport)
}

func (h *ReportHandler) ExportUsersReport(c *gin.Context) {
	h.export(c, "users_report.xlsx", h.reportService.ExportUsersReport)
}

// export buffers the workbook before writing headers so a build failure
// still produces a clean JSON error instead of a truncated binary.
func (h *ReportHandler) export(c *gin.Context, filename string, build func(ctx context.Context, w io.Writer) error) {
	lang := middleware.GetLang(c)

	var buf bytes.Buffer
	if err := build(c.Request.Context(), &buf); err != nil {
		zap.L().Error("failed to export report", zap.String("filename", filename), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportReport, lang),
		)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
