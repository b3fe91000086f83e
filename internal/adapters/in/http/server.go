// Package http exposes the load lifecycle operations over HTTP.
// It coordinates between echo handlers and the application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"loadflow/internal/core/application/usecases/commands"
	"loadflow/internal/core/application/usecases/queries"
	"loadflow/internal/core/domain/model/kernel"
	"loadflow/internal/core/domain/model/load"
	"loadflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the command and query handlers.
type Server struct {
	// Command handlers
	createLoadHandler    commands.CreateLoadCommandHandler
	advanceLoadHandler   commands.AdvanceLoadCommandHandler
	retreatLoadHandler   commands.RetreatLoadCommandHandler
	setInvoicedAtHandler commands.SetInvoicedAtCommandHandler
	setPaidAtHandler     commands.SetPaidAtCommandHandler
	clearPaidAtHandler   commands.ClearPaidAtCommandHandler

	// Query handlers
	getLoadProgressHandler  queries.GetLoadProgressQueryHandler
	getLoadsByStatusHandler queries.GetLoadsByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(
	createLoadHandler commands.CreateLoadCommandHandler,
	advanceLoadHandler commands.AdvanceLoadCommandHandler,
	retreatLoadHandler commands.RetreatLoadCommandHandler,
	setInvoicedAtHandler commands.SetInvoicedAtCommandHandler,
	setPaidAtHandler commands.SetPaidAtCommandHandler,
	clearPaidAtHandler commands.ClearPaidAtCommandHandler,
	getLoadProgressHandler queries.GetLoadProgressQueryHandler,
	getLoadsByStatusHandler queries.GetLoadsByStatusQueryHandler,
) *Server {
	return &Server{
		createLoadHandler:       createLoadHandler,
		advanceLoadHandler:      advanceLoadHandler,
		retreatLoadHandler:      retreatLoadHandler,
		setInvoicedAtHandler:    setInvoicedAtHandler,
		setPaidAtHandler:        setPaidAtHandler,
		clearPaidAtHandler:      clearPaidAtHandler,
		getLoadProgressHandler:  getLoadProgressHandler,
		getLoadsByStatusHandler: getLoadsByStatusHandler,
	}
}

// RegisterRoutes attaches all load lifecycle routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/loads", s.CreateLoad)
	api.GET("/loads", s.GetLoadsByStatus)
	api.GET("/loads/:id/progress", s.GetLoadProgress)
	api.POST("/loads/:id/advance", s.AdvanceLoad)
	api.POST("/loads/:id/retreat", s.RetreatLoad)
	api.PUT("/loads/:id/invoiced-at", s.SetInvoicedAt)
	api.PUT("/loads/:id/paid-at", s.SetPaidAt)
	api.DELETE("/loads/:id/paid-at", s.ClearPaidAt)
}

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var req CreateLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	performedBy, err := performedByID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orgID, err := kernel.UUIDFromString(req.OrgID)
	if err != nil {
		return badRequest(ctx, "Invalid orgId: "+err.Error())
	}

	rate, err := kernel.MoneyFromString(req.Rate)
	if err != nil {
		return badRequest(ctx, "Invalid rate: "+err.Error())
	}

	stops, err := stopsFromRequest(req.Stops)
	if err != nil {
		return badRequest(ctx, "Invalid stops: "+err.Error())
	}

	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), orgID, stops, rate, performedBy)
	if err != nil {
		return badRequest(ctx, "Invalid load data: "+err.Error())
	}

	resp, err := s.createLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateLoadResponse{
		ID:            resp.LoadID.String(),
		InvoiceNumber: resp.InvoiceNumber,
	})
}

// AdvanceLoad handles POST /api/v1/loads/:id/advance.
func (s *Server) AdvanceLoad(ctx echo.Context) error {
	loadID, performedBy, err := mutationIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAdvanceLoadCommand(loadID, performedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.advanceLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, progressJSON(resp))
}

// RetreatLoad handles POST /api/v1/loads/:id/retreat.
func (s *Server) RetreatLoad(ctx echo.Context) error {
	loadID, performedBy, err := mutationIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRetreatLoadCommand(loadID, performedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.retreatLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, progressJSON(resp))
}

// SetInvoicedAt handles PUT /api/v1/loads/:id/invoiced-at.
func (s *Server) SetInvoicedAt(ctx echo.Context) error {
	loadID, performedBy, err := mutationIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req SetTimestampRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetInvoicedAtCommand(loadID, req.Timestamp, performedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setInvoicedAtHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPaidAt handles PUT /api/v1/loads/:id/paid-at.
func (s *Server) SetPaidAt(ctx echo.Context) error {
	loadID, performedBy, err := mutationIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req SetTimestampRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPaidAtCommand(loadID, req.Timestamp, performedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setPaidAtHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearPaidAt handles DELETE /api/v1/loads/:id/paid-at.
func (s *Server) ClearPaidAt(ctx echo.Context) error {
	loadID, performedBy, err := mutationIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewClearPaidAtCommand(loadID, performedBy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.clearPaidAtHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLoadProgress handles GET /api/v1/loads/:id/progress.
func (s *Server) GetLoadProgress(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid load id: "+err.Error())
	}

	query, err := queries.NewGetLoadProgressQuery(loadID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getLoadProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoadProgressResponse{
		ID:            resp.LoadID.String(),
		InvoiceNumber: resp.InvoiceNumber,
		DetailedSteps: resp.DetailedSteps,
		VisibleSteps:  resp.VisibleSteps,
		Cursor:        resp.Cursor,
		VisibleIndex:  resp.VisibleIndex,
		Status:        resp.Status.String(),
	})
}

// GetLoadsByStatus handles GET /api/v1/loads?orgId=...&status=...
func (s *Server) GetLoadsByStatus(ctx echo.Context) error {
	orgID, err := kernel.UUIDFromString(ctx.QueryParam("orgId"))
	if err != nil {
		return badRequest(ctx, "Invalid orgId: "+err.Error())
	}

	status, err := load.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	query, err := queries.NewGetLoadsByStatusQuery(orgID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.getLoadsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp := make([]LoadSummaryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, LoadSummaryResponse{
			ID:            row.LoadID.String(),
			InvoiceNumber: row.InvoiceNumber,
			Cursor:        row.Cursor,
			Status:        row.Status.String(),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// mutationIDs extracts the load ID from the path and the acting user from
// the X-User-Id header.
func mutationIDs(ctx echo.Context) (loadID, performedBy kernel.UUID, err error) {
	loadID, err = kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errors.New("invalid load id")
	}

	performedBy, err = performedByID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return loadID, performedBy, nil
}

func performedByID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get("X-User-Id")
	if raw == "" {
		return kernel.UUID{}, errors.New("missing X-User-Id header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errors.New("invalid X-User-Id header")
	}
	return id, nil
}

func stopsFromRequest(reqs []StopRequest) ([]*load.Stop, error) {
	stops := make([]*load.Stop, 0, len(reqs))
	for i, r := range reqs {
		kind, err := load.StopKindFromString(r.Kind)
		if err != nil {
			return nil, err
		}

		timeType, err := load.TimeTypeFromString(r.TimeType)
		if err != nil {
			return nil, err
		}

		stop, err := load.RestoreStop(
			kernel.NewUUID(), kind, r.Location, timeType,
			r.AppointmentTime, r.WindowStart, r.WindowEnd, i)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return stops, nil
}

func progressJSON(resp commands.ProgressResponse) ProgressResponse {
	return ProgressResponse{
		Cursor: resp.Cursor,
		Status: resp.Status.String(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors onto HTTP status codes: missing objects
// to 404, rejected transitions and ineligible loads to 409, bad values to
// 400, everything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrPreconditionFailed):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// Request and response bodies for the load lifecycle API.
type (
	// StopRequest is one stop in a load creation request. AppointmentTime
	// is required for "appointment" stops; WindowStart and WindowEnd for
	// "window" stops.
	StopRequest struct {
		Kind            string     `json:"kind"`
		Location        string     `json:"location"`
		TimeType        string     `json:"timeType"`
		AppointmentTime *time.Time `json:"appointmentTime,omitempty"`
		WindowStart     *time.Time `json:"windowStart,omitempty"`
		WindowEnd       *time.Time `json:"windowEnd,omitempty"`
	}

	CreateLoadRequest struct {
		OrgID string        `json:"orgId"`
		Rate  string        `json:"rate"`
		Stops []StopRequest `json:"stops"`
	}

	CreateLoadResponse struct {
		ID            string `json:"id"`
		InvoiceNumber string `json:"invoiceNumber"`
	}

	SetTimestampRequest struct {
		Timestamp time.Time `json:"timestamp"`
	}

	ProgressResponse struct {
		Cursor int    `json:"cursor"`
		Status string `json:"status"`
	}

	LoadProgressResponse struct {
		ID            string   `json:"id"`
		InvoiceNumber string   `json:"invoiceNumber"`
		DetailedSteps []string `json:"detailedSteps"`
		VisibleSteps  []string `json:"visibleSteps"`
		Cursor        int      `json:"cursor"`
		VisibleIndex  int      `json:"visibleIndex"`
		Status        string   `json:"status"`
	}

	LoadSummaryResponse struct {
		ID            string `json:"id"`
		InvoiceNumber string `json:"invoiceNumber"`
		Cursor        int    `json:"cursor"`
		Status        string `json:"status"`
	}

	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)
