package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/workorder"
	"workorders/internal/generated/servers"
	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateWorkOrder     commands.CreateWorkOrderCommandHandler
	AddTask             commands.AddTaskCommandHandler
	UpdateTaskStatus    commands.UpdateTaskStatusCommandHandler
	AssignPerformer     commands.AssignPerformerCommandHandler
	CreateWorkOrderType commands.CreateWorkOrderTypeCommandHandler
	UpdateWorkOrderType commands.UpdateWorkOrderTypeCommandHandler
	DeleteWorkOrderType commands.DeleteWorkOrderTypeCommandHandler

	ListWorkOrders     queries.ListWorkOrdersQueryHandler
	GetWorkOrder       queries.GetWorkOrderQueryHandler
	GetAllPerformers   queries.GetAllPerformersQueryHandler
	GetAllTypes        queries.GetAllWorkOrderTypesQueryHandler
	GetStatistics      queries.GetStatisticsQueryHandler
	GetLogisticsAdvice queries.GetLogisticsAdviceQueryHandler
}

// Server implements servers.ServerInterface on top of the application
// commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// ListWorkOrders handles GET /api/v1/work-orders.
func (s *Server) ListWorkOrders(ctx echo.Context, params servers.ListWorkOrdersParams) error {
	var typeID *kernel.UUID
	if params.TypeId != nil {
		id, err := toKernelUUID(*params.TypeId)
		if err != nil {
			return s.fail(ctx, err, "Invalid typeId")
		}
		typeID = &id
	}

	sortBy := queries.SortByNumber
	if params.SortBy != nil {
		parsed, err := queries.ParseSortOrder(string(*params.SortBy))
		if err != nil {
			return s.fail(ctx, err, "Invalid sortBy")
		}
		sortBy = parsed
	}

	query, err := queries.NewListWorkOrdersQuery(kernel.DateFromTime(params.Date.Time), typeID, sortBy)
	if err != nil {
		return s.fail(ctx, err, "Invalid query")
	}

	orders, err := s.h.ListWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve work orders")
	}

	response := make([]servers.WorkOrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toSummary(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var body servers.NewWorkOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	typeID, err := toKernelUUID(body.TypeId)
	if err != nil {
		return s.fail(ctx, err, "Invalid typeId")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(orderID, typeID, kernel.DateFromTime(body.Date.Time))
	if err != nil {
		return s.fail(ctx, err, "Invalid work order data")
	}

	if err = s.h.CreateWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create work order")
	}

	created := servers.Created{Id: orderID.Bytes()}

	query, err := queries.NewGetWorkOrderQuery(orderID)
	if err == nil {
		if details, getErr := s.h.GetWorkOrder.Handle(ctx.Request().Context(), query); getErr == nil {
			created.Number = &details.Number
		}
	}

	return ctx.JSON(http.StatusCreated, created)
}

// GetWorkOrder handles GET /api/v1/work-orders/{orderId}.
func (s *Server) GetWorkOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err, "Invalid orderId")
	}

	query, err := queries.NewGetWorkOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid query")
	}

	details, err := s.h.GetWorkOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve work order")
	}

	return ctx.JSON(http.StatusOK, toDetails(details))
}

// AddTask handles POST /api/v1/work-orders/{orderId}/tasks.
func (s *Server) AddTask(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.NewTask
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err, "Invalid orderId")
	}

	taskType, err := kernel.ParseTaskType(string(body.Type))
	if err != nil {
		return s.fail(ctx, err, "Invalid task type")
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewAddTaskCommand(id, taskID, taskType, body.Address, body.ClientName, description)
	if err != nil {
		return s.fail(ctx, err, "Invalid task data")
	}

	if err = s.h.AddTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to add task")
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: taskID.Bytes()})
}

// UpdateTaskStatus handles PUT /api/v1/work-orders/{orderId}/tasks/{taskId}/status.
func (s *Server) UpdateTaskStatus(ctx echo.Context, orderId servers.OrderId, taskId openapi_types.UUID) error {
	var body servers.TaskStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	oid, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err, "Invalid orderId")
	}
	tid, err := toKernelUUID(taskId)
	if err != nil {
		return s.fail(ctx, err, "Invalid taskId")
	}

	status, err := workorder.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err, "Invalid status")
	}

	cmd, err := commands.NewUpdateTaskStatusCommand(oid, tid, status)
	if err != nil {
		return s.fail(ctx, err, "Invalid status update")
	}

	if err = s.h.UpdateTaskStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update task status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPerformer handles PUT /api/v1/work-orders/{orderId}/performer.
func (s *Server) AssignPerformer(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.PerformerAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	oid, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err, "Invalid orderId")
	}
	pid, err := toKernelUUID(body.PerformerId)
	if err != nil {
		return s.fail(ctx, err, "Invalid performerId")
	}

	cmd, err := commands.NewAssignPerformerCommand(oid, pid)
	if err != nil {
		return s.fail(ctx, err, "Invalid assignment")
	}

	if err = s.h.AssignPerformer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to assign performer")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkOrderTypes handles GET /api/v1/work-order-types.
func (s *Server) GetWorkOrderTypes(ctx echo.Context) error {
	types, err := s.h.GetAllTypes.Handle(ctx.Request().Context(), queries.NewGetAllWorkOrderTypesQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve work order types")
	}

	response := make([]servers.WorkOrderType, len(types))
	for i, t := range types {
		quotas := make(servers.Quotas, len(t.Quotas))
		for tt, v := range t.Quotas {
			quotas[tt.String()] = v
		}
		allowed := make([]servers.TaskType, len(t.AllowedTaskTypes))
		for j, tt := range t.AllowedTaskTypes {
			allowed[j] = servers.TaskType(tt)
		}
		response[i] = servers.WorkOrderType{
			Id:               t.ID.Bytes(),
			Name:             t.Name,
			Quotas:           quotas,
			TotalQuota:       t.TotalQuota,
			AllowedTaskTypes: allowed,
			CreatorRoles:     t.CreatorRoles,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateWorkOrderType handles POST /api/v1/work-order-types.
func (s *Server) CreateWorkOrderType(ctx echo.Context) error {
	var body servers.NewWorkOrderType
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	name := ""
	if body.Name != nil {
		name = *body.Name
	}

	quotas, err := fromQuotas(body.Quotas)
	if err != nil {
		return s.fail(ctx, err, "Invalid quotas")
	}

	var allowed []kernel.TaskType
	if body.AllowedTaskTypes != nil {
		allowed = make([]kernel.TaskType, 0, len(*body.AllowedTaskTypes))
		for _, raw := range *body.AllowedTaskTypes {
			tt, parseErr := kernel.ParseTaskType(string(raw))
			if parseErr != nil {
				return s.fail(ctx, parseErr, "Invalid allowed task type")
			}
			allowed = append(allowed, tt)
		}
	}

	var roles []string
	if body.CreatorRoles != nil {
		roles = *body.CreatorRoles
	}

	typeID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderTypeCommand(typeID, name, quotas, allowed, roles)
	if err != nil {
		return s.fail(ctx, err, "Invalid work order type data")
	}

	if err = s.h.CreateWorkOrderType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create work order type")
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: typeID.Bytes()})
}

// UpdateWorkOrderType handles PATCH /api/v1/work-order-types/{typeId}.
func (s *Server) UpdateWorkOrderType(ctx echo.Context, typeId servers.TypeId) error {
	var body servers.WorkOrderTypeUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(typeId)
	if err != nil {
		return s.fail(ctx, err, "Invalid typeId")
	}

	quotas, err := fromQuotas(body.Quotas)
	if err != nil {
		return s.fail(ctx, err, "Invalid quotas")
	}

	cmd, err := commands.NewUpdateWorkOrderTypeCommand(id, body.Name, quotas)
	if err != nil {
		return s.fail(ctx, err, "Invalid work order type data")
	}

	if err = s.h.UpdateWorkOrderType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to update work order type")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWorkOrderType handles DELETE /api/v1/work-order-types/{typeId}.
func (s *Server) DeleteWorkOrderType(ctx echo.Context, typeId servers.TypeId) error {
	id, err := toKernelUUID(typeId)
	if err != nil {
		return s.fail(ctx, err, "Invalid typeId")
	}

	cmd, err := commands.NewDeleteWorkOrderTypeCommand(id)
	if err != nil {
		return s.fail(ctx, err, "Invalid typeId")
	}

	if err = s.h.DeleteWorkOrderType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to delete work order type")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPerformers handles GET /api/v1/performers.
func (s *Server) GetPerformers(ctx echo.Context) error {
	performers, err := s.h.GetAllPerformers.Handle(ctx.Request().Context(), queries.NewGetAllPerformersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve performers")
	}

	response := make([]servers.Performer, len(performers))
	for i, p := range performers {
		response[i] = toPerformer(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.h.GetStatistics.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to compute statistics")
	}

	distribution := make(map[string]int, len(stats.StatusDistribution))
	for status, n := range stats.StatusDistribution {
		distribution[status.String()] = n
	}

	averages := make([]servers.DateAverage, len(stats.DateAverages))
	for i, a := range stats.DateAverages {
		averages[i] = servers.DateAverage{Date: a.Date, AvgCompletion: a.AvgCompletion}
	}

	return ctx.JSON(http.StatusOK, servers.Statistics{
		TotalOrders:        stats.TotalOrders,
		TotalTasks:         stats.TotalTasks,
		StatusDistribution: distribution,
		DateAverages:       averages,
	})
}

// GetLogisticsAdvice handles GET /api/v1/logistics-advice.
func (s *Server) GetLogisticsAdvice(ctx echo.Context, params servers.GetLogisticsAdviceParams) error {
	var typeID *kernel.UUID
	if params.TypeId != nil {
		id, err := toKernelUUID(*params.TypeId)
		if err != nil {
			return s.fail(ctx, err, "Invalid typeId")
		}
		typeID = &id
	}

	query, err := queries.NewGetLogisticsAdviceQuery(kernel.DateFromTime(params.Date.Time), typeID)
	if err != nil {
		return s.fail(ctx, err, "Invalid date")
	}

	advice, err := s.h.GetLogisticsAdvice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to request logistics advice")
	}

	return ctx.JSON(http.StatusOK, servers.LogisticsAdvice{Text: advice.Text, Fallback: advice.Fallback})
}

// fail maps err to a status code: not found is 404, validation is 400,
// anything else is 500 and is logged without exposing the cause.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: message + ": " + err.Error(),
		})
	case errs.IsValidation(err):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: message + ": " + err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromQuotas(q *servers.Quotas) (map[kernel.TaskType]int, error) {
	if q == nil {
		return nil, nil
	}
	out := make(map[kernel.TaskType]int, len(*q))
	for raw, v := range *q {
		tt, err := kernel.ParseTaskType(raw)
		if err != nil {
			return nil, err
		}
		out[tt] = v
	}
	return out, nil
}

func toPerformer(p queries.PerformerResponse) servers.Performer {
	out := servers.Performer{
		Id:   p.ID.Bytes(),
		Name: p.Name,
		Role: p.Role,
	}
	if p.Avatar != "" {
		avatar := p.Avatar
		out.Avatar = &avatar
	}
	return out
}

func toDate(s string) openapi_types.Date {
	t, err := time.Parse(kernel.DateLayout, s)
	if err != nil {
		return openapi_types.Date{}
	}
	return openapi_types.Date{Time: t}
}

func toSummary(o queries.WorkOrderSummaryResponse) servers.WorkOrderSummary {
	statuses := make([]servers.TaskStatus, len(o.TaskStatuses))
	for i, st := range o.TaskStatuses {
		statuses[i] = servers.TaskStatus(st)
	}

	out := servers.WorkOrderSummary{
		Id:                o.ID.Bytes(),
		Number:            o.Number,
		Date:              toDate(o.Date),
		TypeId:            o.TypeID.Bytes(),
		TypeName:          o.TypeName,
		TaskStatuses:      statuses,
		TaskCount:         o.TaskCount,
		TotalQuota:        o.TotalQuota,
		CompletionPercent: o.CompletionPercent,
	}
	if o.PerformerID != nil {
		id := o.PerformerID.Bytes()
		out.PerformerId = &id
	}
	if o.Performer != nil {
		p := toPerformer(*o.Performer)
		out.Performer = &p
	}
	return out
}

func toDetails(d queries.WorkOrderDetailsResponse) servers.WorkOrderDetails {
	summary := toSummary(d.WorkOrderSummaryResponse)

	tasks := make([]servers.Task, len(d.Tasks))
	for i, t := range d.Tasks {
		tasks[i] = servers.Task{
			Id:          t.ID.Bytes(),
			Type:        servers.TaskType(t.Type),
			Status:      servers.TaskStatus(t.Status),
			Address:     t.Address,
			ClientName:  t.ClientName,
			Description: t.Description,
		}
		if t.ReplacementForID != nil {
			id := t.ReplacementForID.Bytes()
			tasks[i].ReplacementForId = &id
		}
	}

	progress := make([]servers.QuotaProgress, len(d.QuotaProgress))
	for i, p := range d.QuotaProgress {
		progress[i] = servers.QuotaProgress{
			Type:      servers.TaskType(p.Type),
			Placed:    p.Placed,
			Quota:     p.Quota,
			OpenSlots: p.OpenSlots,
			OverQuota: p.OverQuota,
		}
	}

	allowed := make([]servers.TaskType, len(d.AllowedTaskTypes))
	for i, tt := range d.AllowedTaskTypes {
		allowed[i] = servers.TaskType(tt)
	}

	return servers.WorkOrderDetails{
		Id:                summary.Id,
		Number:            summary.Number,
		Date:              summary.Date,
		TypeId:            summary.TypeId,
		TypeName:          summary.TypeName,
		PerformerId:       summary.PerformerId,
		Performer:         summary.Performer,
		TaskStatuses:      summary.TaskStatuses,
		TaskCount:         summary.TaskCount,
		TotalQuota:        summary.TotalQuota,
		CompletionPercent: summary.CompletionPercent,
		Tasks:             tasks,
		QuotaProgress:     progress,
		AllowedTaskTypes:  allowed,
	}
}
