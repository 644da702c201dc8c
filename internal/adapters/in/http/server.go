// Package http exposes the shop floor operations as a JSON API on echo.
//
// Worker identity comes from the X-Worker-ID header: the surrounding system
// resolves badges or logins to worker IDs before requests reach this service.
package http

import (
	"errors"
	"net/http"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// WorkerIDHeader carries the authenticated worker's identifier.
const WorkerIDHeader = "X-Worker-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openShiftHandler      commands.OpenShiftCommandHandler
	startOrderHandler     commands.StartOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler
	abortOrderHandler     commands.AbortOrderCommandHandler
	forceStopOrderHandler commands.ForceStopOrderCommandHandler
	holdOrderHandler      commands.HoldOrderCommandHandler
	resumeOrderHandler    commands.ResumeOrderCommandHandler
	closeShiftHandler     commands.CloseShiftCommandHandler
	fileReportHandler     commands.FileReportCommandHandler
	resolveReportHandler  commands.ResolveReportCommandHandler

	// Query handlers
	getOpenReportsHandler  queries.GetOpenReportsQueryHandler
	getShiftSummaryHandler queries.GetShiftSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openShiftHandler commands.OpenShiftCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	abortOrderHandler commands.AbortOrderCommandHandler,
	forceStopOrderHandler commands.ForceStopOrderCommandHandler,
	holdOrderHandler commands.HoldOrderCommandHandler,
	resumeOrderHandler commands.ResumeOrderCommandHandler,
	closeShiftHandler commands.CloseShiftCommandHandler,
	fileReportHandler commands.FileReportCommandHandler,
	resolveReportHandler commands.ResolveReportCommandHandler,
	getOpenReportsHandler queries.GetOpenReportsQueryHandler,
	getShiftSummaryHandler queries.GetShiftSummaryQueryHandler,
) *Server {
	return &Server{
		openShiftHandler:      openShiftHandler,
		startOrderHandler:     startOrderHandler,
		advanceOrderHandler:   advanceOrderHandler,
		abortOrderHandler:     abortOrderHandler,
		forceStopOrderHandler: forceStopOrderHandler,
		holdOrderHandler:      holdOrderHandler,
		resumeOrderHandler:    resumeOrderHandler,
		closeShiftHandler:     closeShiftHandler,
		fileReportHandler:     fileReportHandler,
		resolveReportHandler:  resolveReportHandler,

		getOpenReportsHandler:  getOpenReportsHandler,
		getShiftSummaryHandler: getShiftSummaryHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/shifts/open", s.OpenShift)
	api.POST("/shifts/:shift_id/close", s.CloseShift)
	api.GET("/shifts/:shift_id/summary", s.GetShiftSummary)

	api.POST("/orders", s.StartOrder)
	api.POST("/orders/:order_id/advance", s.AdvanceOrder)
	api.POST("/orders/:order_id/hold", s.HoldOrder)
	api.POST("/orders/:order_id/resume", s.ResumeOrder)
	api.POST("/orders/:order_id/force-stop", s.ForceStopOrder)
	api.DELETE("/orders/:order_id", s.AbortOrder)

	api.POST("/reports", s.FileReport)
	api.POST("/reports/:report_id/resolve", s.ResolveReport)
	api.GET("/reports/open", s.GetOpenReports)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// OpenShift handles POST /api/v1/shifts/open.
// Opening is idempotent per worker: a still-open shift is returned as is.
func (s *Server) OpenShift(ctx echo.Context) error {
	workerID, err := workerIDFrom(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewOpenShiftCommand(workerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shift, err := s.openShiftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shiftResponse{
		ID:        shift.ID().String(),
		WorkerID:  shift.WorkerID().String(),
		StartTime: shift.StartTime(),
	})
}

// CloseShift handles POST /api/v1/shifts/:shift_id/close.
func (s *Server) CloseShift(ctx echo.Context) error {
	shiftID, err := pathUUID(ctx, "shift_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCloseShiftCommand(shiftID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.closeShiftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// GetShiftSummary handles GET /api/v1/shifts/:shift_id/summary.
func (s *Server) GetShiftSummary(ctx echo.Context) error {
	shiftID, err := pathUUID(ctx, "shift_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShiftSummaryQuery(shiftID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	summary, err := s.getShiftSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp := shiftSummaryResponse{
		ID:        summary.ID.String(),
		WorkerID:  summary.WorkerID.String(),
		StartTime: summary.StartTime,
		EndTime:   summary.EndTime,

		NumEndedOrders: summary.NumEndedOrders,
	}
	resp.TimeTotalSeconds = asSeconds(summary.TimeTotal)
	resp.GoodTimeSeconds = asSeconds(summary.GoodTime)
	resp.BadTimeSeconds = asSeconds(summary.BadTime)
	resp.LostTimeSeconds = asSeconds(summary.LostTime)
	resp.TotalBugsTimeSeconds = asSeconds(summary.TotalBugsTime)

	return ctx.JSON(http.StatusOK, resp)
}

// StartOrder handles POST /api/v1/orders.
// The order ID is generated server side; the worker must have an open shift
// and the machine must be free.
func (s *Server) StartOrder(ctx echo.Context) error {
	workerID, err := workerIDFrom(ctx)
	if err != nil {
		return err
	}

	var req startOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	machineID, err := kernel.UUIDFromString(req.MachineID)
	if err != nil {
		return badRequest(ctx, "Invalid machine_id")
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewStartOrderCommand(orderID, workerID, machineID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.startOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse{ID: orderID.String()})
}

// AdvanceOrder handles POST /api/v1/orders/:order_id/advance.
// The action names the next stage: scan, quantify, setup, process or end.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}

	var req advanceOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := commands.OrderActionFromString(req.Action)
	if err != nil {
		return badRequest(ctx, "Unknown action: "+req.Action)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, action, req.PartName, req.NumParts)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// HoldOrder handles POST /api/v1/orders/:order_id/hold.
func (s *Server) HoldOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}

	var req holdOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewHoldOrderCommand(orderID, req.ResumeURL)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.holdOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ResumeOrder handles POST /api/v1/orders/:order_id/resume.
// Responds with the location recorded when the order was held, or "/" when
// there is nothing to resume.
func (s *Server) ResumeOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewResumeOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	url, err := s.resumeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resumeResponse{URL: url})
}

// ForceStopOrder handles POST /api/v1/orders/:order_id/force-stop.
func (s *Server) ForceStopOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewForceStopOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.forceStopOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AbortOrder handles DELETE /api/v1/orders/:order_id.
// Only orders that have not been scanned yet can be aborted.
func (s *Server) AbortOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAbortOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.abortOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FileReport handles POST /api/v1/reports.
func (s *Server) FileReport(ctx echo.Context) error {
	workerID, err := workerIDFrom(ctx)
	if err != nil {
		return err
	}

	var req fileReportRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		id, parseErr := kernel.UUIDFromString(req.OrderID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid order_id")
		}
		orderID = &id
	}

	reportID := kernel.NewUUID()

	cmd, err := commands.NewFileReportCommand(reportID, workerID, orderID, req.Description, req.ResumeURL)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.fileReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, reportResponse{ID: reportID.String()})
}

// ResolveReport handles POST /api/v1/reports/:report_id/resolve.
func (s *Server) ResolveReport(ctx echo.Context) error {
	reportID, err := pathUUID(ctx, "report_id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewResolveReportCommand(reportID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.resolveReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOpenReports handles GET /api/v1/reports/open.
func (s *Server) GetOpenReports(ctx echo.Context) error {
	workerID, err := workerIDFrom(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOpenReportsQuery(workerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	reports, err := s.getOpenReportsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]openReportResponse, len(reports))
	for i, report := range reports {
		response[i] = openReportResponse{
			ID:          report.ID.String(),
			Description: report.Description,
			URL:         report.URL,
			StartTime:   report.StartTime,
		}
		if report.OrderID != nil {
			orderID := report.OrderID.String()
			response[i].OrderID = &orderID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func workerIDFrom(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(WorkerIDHeader)
	if header == "" {
		return kernel.UUID{}, badRequest(ctx, "Missing "+WorkerIDHeader+" header")
	}

	workerID, err := kernel.UUIDFromString(header)
	if err != nil {
		return kernel.UUID{}, badRequest(ctx, "Invalid "+WorkerIDHeader+" header")
	}

	return workerID, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, badRequest(ctx, "Invalid "+name)
	}

	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrResourceConflict),
		errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, commands.ErrNoOpenShift),
		errors.Is(err, commands.ErrOrdersStillOpen),
		errors.Is(err, commands.ErrOrderAlreadyStarted):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrPartNameIsRequired),
		errors.Is(err, commands.ErrNumPartsIsInvalid),
		errors.Is(err, commands.ErrDescriptionIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorBody{
		Code:    code,
		Message: err.Error(),
	})
}
