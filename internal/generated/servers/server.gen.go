// Package servers provides primitives to interact with the openapi HTTP API.
//
// This file holds the models and the echo server wrapper for openapi.yaml in
// the layout oapi-codegen emits for oapi-codegen.yaml. It is kept in sync with
// openapi.yaml by hand; running go generate in this package replaces it with
// generator output of the same API.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for SortOrder.
const (
	Completion SortOrder = "completion"
	Number     SortOrder = "number"
)

// Defines values for TaskStatus.
const (
	CANCELLED TaskStatus = "CANCELLED"
	DONE      TaskStatus = "DONE"
	NEW       TaskStatus = "NEW"
	REPLACED  TaskStatus = "REPLACED"
)

// Defines values for TaskType.
const (
	CONNECTION  TaskType = "CONNECTION"
	TECHSUPPORT TaskType = "TECH_SUPPORT"
)

// Created defines model for Created.
type Created struct {
	Id     openapi_types.UUID `json:"id"`
	Number *string            `json:"number,omitempty"`
}

// DateAverage defines model for DateAverage.
type DateAverage struct {
	AvgCompletion int    `json:"avgCompletion"`
	Date          string `json:"date"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LogisticsAdvice defines model for LogisticsAdvice.
type LogisticsAdvice struct {
	Fallback bool   `json:"fallback"`
	Text     string `json:"text"`
}

// NewTask defines model for NewTask.
type NewTask struct {
	Address     string   `json:"address"`
	ClientName  string   `json:"clientName"`
	Description *string  `json:"description,omitempty"`
	Type        TaskType `json:"type"`
}

// NewWorkOrder defines model for NewWorkOrder.
type NewWorkOrder struct {
	Date   openapi_types.Date `json:"date"`
	TypeId openapi_types.UUID `json:"typeId"`
}

// NewWorkOrderType defines model for NewWorkOrderType.
type NewWorkOrderType struct {
	AllowedTaskTypes *[]TaskType `json:"allowedTaskTypes,omitempty"`
	CreatorRoles     *[]string   `json:"creatorRoles,omitempty"`
	Name             *string     `json:"name,omitempty"`
	Quotas           *Quotas     `json:"quotas,omitempty"`
}

// Performer defines model for Performer.
type Performer struct {
	Avatar *string            `json:"avatar,omitempty"`
	Id     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
	Role   string             `json:"role"`
}

// PerformerAssignment defines model for PerformerAssignment.
type PerformerAssignment struct {
	PerformerId openapi_types.UUID `json:"performerId"`
}

// QuotaProgress defines model for QuotaProgress.
type QuotaProgress struct {
	OpenSlots int      `json:"openSlots"`
	OverQuota int      `json:"overQuota"`
	Placed    int      `json:"placed"`
	Quota     int      `json:"quota"`
	Type      TaskType `json:"type"`
}

// Quotas defines model for Quotas.
type Quotas map[string]int

// SortOrder defines model for SortOrder.
type SortOrder string

// Statistics defines model for Statistics.
type Statistics struct {
	DateAverages       []DateAverage  `json:"dateAverages"`
	StatusDistribution map[string]int `json:"statusDistribution"`
	TotalOrders        int            `json:"totalOrders"`
	TotalTasks         int            `json:"totalTasks"`
}

// Task defines model for Task.
type Task struct {
	Address          string              `json:"address"`
	ClientName       string              `json:"clientName"`
	Description      string              `json:"description"`
	Id               openapi_types.UUID  `json:"id"`
	ReplacementForId *openapi_types.UUID `json:"replacementForId,omitempty"`
	Status           TaskStatus          `json:"status"`
	Type             TaskType            `json:"type"`
}

// TaskStatus defines model for TaskStatus.
type TaskStatus string

// TaskStatusUpdate defines model for TaskStatusUpdate.
type TaskStatusUpdate struct {
	Status TaskStatus `json:"status"`
}

// TaskType defines model for TaskType.
type TaskType string

// WorkOrderDetails defines model for WorkOrderDetails.
type WorkOrderDetails struct {
	AllowedTaskTypes  []TaskType          `json:"allowedTaskTypes"`
	CompletionPercent int                 `json:"completionPercent"`
	Date              openapi_types.Date  `json:"date"`
	Id                openapi_types.UUID  `json:"id"`
	Number            string              `json:"number"`
	Performer         *Performer          `json:"performer,omitempty"`
	PerformerId       *openapi_types.UUID `json:"performerId,omitempty"`
	QuotaProgress     []QuotaProgress     `json:"quotaProgress"`
	TaskCount         int                 `json:"taskCount"`
	TaskStatuses      []TaskStatus        `json:"taskStatuses"`
	Tasks             []Task              `json:"tasks"`
	TotalQuota        int                 `json:"totalQuota"`
	TypeId            openapi_types.UUID  `json:"typeId"`
	TypeName          string              `json:"typeName"`
}

// WorkOrderSummary defines model for WorkOrderSummary.
type WorkOrderSummary struct {
	CompletionPercent int                 `json:"completionPercent"`
	Date              openapi_types.Date  `json:"date"`
	Id                openapi_types.UUID  `json:"id"`
	Number            string              `json:"number"`
	Performer         *Performer          `json:"performer,omitempty"`
	PerformerId       *openapi_types.UUID `json:"performerId,omitempty"`
	TaskCount         int                 `json:"taskCount"`
	TaskStatuses      []TaskStatus        `json:"taskStatuses"`
	TotalQuota        int                 `json:"totalQuota"`
	TypeId            openapi_types.UUID  `json:"typeId"`
	TypeName          string              `json:"typeName"`
}

// WorkOrderType defines model for WorkOrderType.
type WorkOrderType struct {
	AllowedTaskTypes []TaskType         `json:"allowedTaskTypes"`
	CreatorRoles     []string           `json:"creatorRoles"`
	Id               openapi_types.UUID `json:"id"`
	Name             string             `json:"name"`
	Quotas           Quotas             `json:"quotas"`
	TotalQuota       int                `json:"totalQuota"`
}

// WorkOrderTypeUpdate defines model for WorkOrderTypeUpdate.
type WorkOrderTypeUpdate struct {
	Name   *string `json:"name,omitempty"`
	Quotas *Quotas `json:"quotas,omitempty"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// TypeId defines model for TypeId.
type TypeId = openapi_types.UUID

// GetLogisticsAdviceParams defines parameters for GetLogisticsAdvice.
type GetLogisticsAdviceParams struct {
	Date   openapi_types.Date  `form:"date" json:"date"`
	TypeId *openapi_types.UUID `form:"typeId,omitempty" json:"typeId,omitempty"`
}

// ListWorkOrdersParams defines parameters for ListWorkOrders.
type ListWorkOrdersParams struct {
	Date   openapi_types.Date  `form:"date" json:"date"`
	TypeId *openapi_types.UUID `form:"typeId,omitempty" json:"typeId,omitempty"`
	SortBy *SortOrder          `form:"sortBy,omitempty" json:"sortBy,omitempty"`
}

// CreateWorkOrderTypeJSONRequestBody defines body for CreateWorkOrderType for application/json ContentType.
type CreateWorkOrderTypeJSONRequestBody = NewWorkOrderType

// UpdateWorkOrderTypeJSONRequestBody defines body for UpdateWorkOrderType for application/json ContentType.
type UpdateWorkOrderTypeJSONRequestBody = WorkOrderTypeUpdate

// CreateWorkOrderJSONRequestBody defines body for CreateWorkOrder for application/json ContentType.
type CreateWorkOrderJSONRequestBody = NewWorkOrder

// AssignPerformerJSONRequestBody defines body for AssignPerformer for application/json ContentType.
type AssignPerformerJSONRequestBody = PerformerAssignment

// AddTaskJSONRequestBody defines body for AddTask for application/json ContentType.
type AddTaskJSONRequestBody = NewTask

// UpdateTaskStatusJSONRequestBody defines body for UpdateTaskStatus for application/json ContentType.
type UpdateTaskStatusJSONRequestBody = TaskStatusUpdate

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Routing advice for the work orders of one day
	// (GET /api/v1/logistics-advice)
	GetLogisticsAdvice(ctx echo.Context, params GetLogisticsAdviceParams) error
	// All performers
	// (GET /api/v1/performers)
	GetPerformers(ctx echo.Context) error
	// Status distribution and average completion per day
	// (GET /api/v1/statistics)
	GetStatistics(ctx echo.Context) error
	// All templates
	// (GET /api/v1/work-order-types)
	GetWorkOrderTypes(ctx echo.Context) error
	// Create a template, omitted fields take defaults
	// (POST /api/v1/work-order-types)
	CreateWorkOrderType(ctx echo.Context) error
	// Delete a template, work orders keep their reference
	// (DELETE /api/v1/work-order-types/{typeId})
	DeleteWorkOrderType(ctx echo.Context, typeId TypeId) error
	// Rename a template or change its quotas
	// (PATCH /api/v1/work-order-types/{typeId})
	UpdateWorkOrderType(ctx echo.Context, typeId TypeId) error
	// Work orders of one day
	// (GET /api/v1/work-orders)
	ListWorkOrders(ctx echo.Context, params ListWorkOrdersParams) error
	// Create an empty work order from a template
	// (POST /api/v1/work-orders)
	CreateWorkOrder(ctx echo.Context) error
	// Work order with tasks and quota progress
	// (GET /api/v1/work-orders/{orderId})
	GetWorkOrder(ctx echo.Context, orderId OrderId) error
	// Assign a performer to a work order
	// (PUT /api/v1/work-orders/{orderId}/performer)
	AssignPerformer(ctx echo.Context, orderId OrderId) error
	// Append a task to a work order
	// (POST /api/v1/work-orders/{orderId}/tasks)
	AddTask(ctx echo.Context, orderId OrderId) error
	// Set the status of a task
	// (PUT /api/v1/work-orders/{orderId}/tasks/{taskId}/status)
	UpdateTaskStatus(ctx echo.Context, orderId OrderId, taskId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetLogisticsAdvice converts echo context to params.
func (w *ServerInterfaceWrapper) GetLogisticsAdvice(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetLogisticsAdviceParams
	// ------------- Required query parameter "date" -------------

	err = runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &params.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	// ------------- Optional query parameter "typeId" -------------

	err = runtime.BindQueryParameter("form", true, false, "typeId", ctx.QueryParams(), &params.TypeId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter typeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetLogisticsAdvice(ctx, params)
	return err
}

// GetPerformers converts echo context to params.
func (w *ServerInterfaceWrapper) GetPerformers(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPerformers(ctx)
	return err
}

// GetStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatistics(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStatistics(ctx)
	return err
}

// GetWorkOrderTypes converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkOrderTypes(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWorkOrderTypes(ctx)
	return err
}

// CreateWorkOrderType converts echo context to params.
func (w *ServerInterfaceWrapper) CreateWorkOrderType(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateWorkOrderType(ctx)
	return err
}

// DeleteWorkOrderType converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteWorkOrderType(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "typeId" -------------
	var typeId TypeId

	err = runtime.BindStyledParameterWithOptions("simple", "typeId", ctx.Param("typeId"), &typeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter typeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteWorkOrderType(ctx, typeId)
	return err
}

// UpdateWorkOrderType converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateWorkOrderType(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "typeId" -------------
	var typeId TypeId

	err = runtime.BindStyledParameterWithOptions("simple", "typeId", ctx.Param("typeId"), &typeId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter typeId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateWorkOrderType(ctx, typeId)
	return err
}

// ListWorkOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListWorkOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListWorkOrdersParams
	// ------------- Required query parameter "date" -------------

	err = runtime.BindQueryParameter("form", true, true, "date", ctx.QueryParams(), &params.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	// ------------- Optional query parameter "typeId" -------------

	err = runtime.BindQueryParameter("form", true, false, "typeId", ctx.QueryParams(), &params.TypeId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter typeId: %s", err))
	}

	// ------------- Optional query parameter "sortBy" -------------

	err = runtime.BindQueryParameter("form", true, false, "sortBy", ctx.QueryParams(), &params.SortBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortBy: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListWorkOrders(ctx, params)
	return err
}

// CreateWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateWorkOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateWorkOrder(ctx)
	return err
}

// GetWorkOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetWorkOrder(ctx, orderId)
	return err
}

// AssignPerformer converts echo context to params.
func (w *ServerInterfaceWrapper) AssignPerformer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignPerformer(ctx, orderId)
	return err
}

// AddTask converts echo context to params.
func (w *ServerInterfaceWrapper) AddTask(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddTask(ctx, orderId)
	return err
}

// UpdateTaskStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateTaskStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// ------------- Path parameter "taskId" -------------
	var taskId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "taskId", ctx.Param("taskId"), &taskId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter taskId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateTaskStatus(ctx, orderId, taskId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/logistics-advice", wrapper.GetLogisticsAdvice)
	router.GET(baseURL+"/api/v1/performers", wrapper.GetPerformers)
	router.GET(baseURL+"/api/v1/statistics", wrapper.GetStatistics)
	router.GET(baseURL+"/api/v1/work-order-types", wrapper.GetWorkOrderTypes)
	router.POST(baseURL+"/api/v1/work-order-types", wrapper.CreateWorkOrderType)
	router.DELETE(baseURL+"/api/v1/work-order-types/:typeId", wrapper.DeleteWorkOrderType)
	router.PATCH(baseURL+"/api/v1/work-order-types/:typeId", wrapper.UpdateWorkOrderType)
	router.GET(baseURL+"/api/v1/work-orders", wrapper.ListWorkOrders)
	router.POST(baseURL+"/api/v1/work-orders", wrapper.CreateWorkOrder)
	router.GET(baseURL+"/api/v1/work-orders/:orderId", wrapper.GetWorkOrder)
	router.PUT(baseURL+"/api/v1/work-orders/:orderId/performer", wrapper.AssignPerformer)
	router.POST(baseURL+"/api/v1/work-orders/:orderId/tasks", wrapper.AddTask)
	router.PUT(baseURL+"/api/v1/work-orders/:orderId/tasks/:taskId/status", wrapper.UpdateTaskStatus)

}
