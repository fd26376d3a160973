package http

import (
	"errors"
	"net/http"
	"strings"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/actor"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/status"
	"shipping/internal/generated/servers"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Caller identity headers, set by the gateway in front of this service.
const (
	headerUserID    = "X-User-Id"
	headerUserRoles = "X-User-Roles"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler     commands.CreateShipmentCommandHandler
	updateShipmentHandler     commands.UpdateShipmentCommandHandler
	deleteShipmentHandler     commands.DeleteShipmentCommandHandler
	assignAgentHandler        commands.AssignAgentCommandHandler
	rescheduleShipmentHandler commands.RescheduleShipmentCommandHandler
	appendStatusHandler       commands.AppendStatusCommandHandler
	retractStatusHandler      commands.RetractStatusCommandHandler
	createPaymentHandler      commands.CreatePaymentCommandHandler
	completeCODPaymentHandler commands.CompleteCODPaymentCommandHandler

	// Query handlers
	getShipmentByIDHandler queries.GetShipmentByIDQueryHandler
	listShipmentsHandler   queries.ListShipmentsQueryHandler
	getPaymentByIDHandler  queries.GetPaymentByIDQueryHandler
	listPaymentsHandler    queries.ListPaymentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	rescheduleShipmentHandler commands.RescheduleShipmentCommandHandler,
	appendStatusHandler commands.AppendStatusCommandHandler,
	retractStatusHandler commands.RetractStatusCommandHandler,
	createPaymentHandler commands.CreatePaymentCommandHandler,
	completeCODPaymentHandler commands.CompleteCODPaymentCommandHandler,
	getShipmentByIDHandler queries.GetShipmentByIDQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getPaymentByIDHandler queries.GetPaymentByIDQueryHandler,
	listPaymentsHandler queries.ListPaymentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:     createShipmentHandler,
		updateShipmentHandler:     updateShipmentHandler,
		deleteShipmentHandler:     deleteShipmentHandler,
		assignAgentHandler:        assignAgentHandler,
		rescheduleShipmentHandler: rescheduleShipmentHandler,
		appendStatusHandler:       appendStatusHandler,
		retractStatusHandler:      retractStatusHandler,
		createPaymentHandler:      createPaymentHandler,
		completeCODPaymentHandler: completeCODPaymentHandler,
		getShipmentByIDHandler:    getShipmentByIDHandler,
		listShipmentsHandler:      listShipmentsHandler,
		getPaymentByIDHandler:     getPaymentByIDHandler,
		listPaymentsHandler:       listPaymentsHandler,
	}
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	filters := make(map[string]string)
	if params.Status != nil {
		filters["status"] = *params.Status
	}
	if params.DeliveryOption != nil {
		filters["delivery_option"] = *params.DeliveryOption
	}
	if params.OwnerId != nil {
		filters["owner_id"] = params.OwnerId.String()
	}
	if params.IsFragile != nil {
		if *params.IsFragile {
			filters["is_fragile"] = "true"
		} else {
			filters["is_fragile"] = "false"
		}
	}

	query, err := queries.NewListShipmentsQuery(filters, intOrZero(params.Page), intOrZero(params.Limit), caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Shipment, len(shipments))
	for i, item := range shipments {
		response[i] = shipmentFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	var body servers.CreateShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dimensions, err := shipment.NewDimensions(body.Dimensions.Length, body.Dimensions.Width, body.Dimensions.Height)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryOption, err := shipment.DeliveryOptionFromString(string(body.DeliveryOption))
	if err != nil {
		return errorResponse(ctx, err)
	}

	isFragile := false
	if body.IsFragile != nil {
		isFragile = *body.IsFragile
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		body.PickupAddress,
		body.DeliveryAddress,
		body.Weight,
		dimensions,
		isFragile,
		deliveryOption,
		caller,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentFromAggregate(created))
}

// GetShipmentById handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipmentById(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetShipmentByIDQuery(shipmentID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.getShipmentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromReadModel(found))
}

// UpdateShipment handles PATCH /api/v1/shipments/{shipmentId}.
func (s *Server) UpdateShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.UpdateShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var dimensions *shipment.Dimensions
	if body.Dimensions != nil {
		parsed, dimErr := shipment.NewDimensions(body.Dimensions.Length, body.Dimensions.Width, body.Dimensions.Height)
		if dimErr != nil {
			return errorResponse(ctx, dimErr)
		}
		dimensions = &parsed
	}

	var deliveryOption *shipment.DeliveryOption
	if body.DeliveryOption != nil {
		parsed, optErr := shipment.DeliveryOptionFromString(string(*body.DeliveryOption))
		if optErr != nil {
			return errorResponse(ctx, optErr)
		}
		deliveryOption = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(
		shipmentID,
		body.PickupAddress,
		body.DeliveryAddress,
		body.Weight,
		dimensions,
		body.IsFragile,
		deliveryOption,
		caller,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromAggregate(updated))
}

// DeleteShipment handles DELETE /api/v1/shipments/{shipmentId}.
func (s *Server) DeleteShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/shipments/{shipmentId}/agent.
func (s *Server) AssignAgent(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.AssignAgentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(body.AgentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(shipmentID, agentID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	assigned, err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromAggregate(assigned))
}

// RescheduleShipment handles POST /api/v1/shipments/{shipmentId}/reschedule.
func (s *Server) RescheduleShipment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.RescheduleShipmentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	timeWindow := ""
	if body.TimeWindow != nil {
		timeWindow = *body.TimeWindow
	}

	cmd, err := commands.NewRescheduleShipmentCommand(shipmentID, body.Date.Time, timeWindow, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	rescheduled, err := s.rescheduleShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromAggregate(rescheduled))
}

// AppendStatus handles POST /api/v1/shipments/{shipmentId}/statuses.
func (s *Server) AppendStatus(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.AppendStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	name, err := status.NameFromString(string(body.Name))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAppendStatusCommand(kernel.NewUUID(), shipmentID, name, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	entry, err := s.appendStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.StatusEntry{
		Id:         entry.ID().Bytes(),
		ShipmentId: entry.ShipmentID().Bytes(),
		Name:       entry.Name().String(),
	})
}

// RetractStatus handles DELETE /api/v1/statuses/{statusId}.
func (s *Server) RetractStatus(ctx echo.Context, statusId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	statusID, err := kernel.UUIDFromBytes(statusId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRetractStatusCommand(statusID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.retractStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePayment handles POST /api/v1/shipments/{shipmentId}/payments.
func (s *Server) CreatePayment(ctx echo.Context, shipmentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromBytes(shipmentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body servers.CreatePaymentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := payment.MethodFromString(string(body.Method))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), shipmentID, method, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentFromAggregate(created))
}

// ListPayments handles GET /api/v1/payments.
func (s *Server) ListPayments(ctx echo.Context, params servers.ListPaymentsParams) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	filters := make(map[string]string)
	if params.Method != nil {
		filters["method"] = *params.Method
	}
	if params.Status != nil {
		filters["status"] = *params.Status
	}
	if params.UserId != nil {
		filters["user_id"] = params.UserId.String()
	}
	if params.ShipmentId != nil {
		filters["shipment_id"] = params.ShipmentId.String()
	}

	query, err := queries.NewListPaymentsQuery(filters, intOrZero(params.Page), intOrZero(params.Limit), caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	payments, err := s.listPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Payment, len(payments))
	for i, item := range payments {
		response[i] = paymentFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentById handles GET /api/v1/payments/{paymentId}.
func (s *Server) GetPaymentById(ctx echo.Context, paymentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	paymentID, err := kernel.UUIDFromBytes(paymentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPaymentByIDQuery(paymentID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.getPaymentByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromReadModel(found))
}

// CompleteCodPayment handles POST /api/v1/payments/{paymentId}/cod-completion.
func (s *Server) CompleteCodPayment(ctx echo.Context, paymentId openapi_types.UUID) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return unauthorized(ctx, err)
	}

	paymentID, err := kernel.UUIDFromBytes(paymentId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	// The body is optional: collection without a reference is still a
	// valid completion.
	var body servers.CompleteCodPaymentJSONRequestBody
	_ = ctx.Bind(&body)

	transactionDetails := ""
	if body.TransactionDetails != nil {
		transactionDetails = *body.TransactionDetails
	}

	cmd, err := commands.NewCompleteCODPaymentCommand(paymentID, transactionDetails, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	completed, err := s.completeCODPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromAggregate(completed))
}

// callerFromRequest reconstructs the authenticated actor from the identity
// headers.
func callerFromRequest(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsRequiredErrorWithCause(headerUserID, err)
	}

	var roles []actor.Role
	for _, raw := range strings.Split(ctx.Request().Header.Get(headerUserRoles), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		role, roleErr := actor.RoleFromString(raw)
		if roleErr != nil {
			return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause(headerUserRoles, roleErr)
		}
		roles = append(roles, role)
	}

	return actor.NewActor(id, roles)
}

// errorResponse translates application errors into HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	var forbiddenErr *errs.ForbiddenError
	var duplicateErr *errs.DuplicateError
	var invalidErr *errs.ValueIsInvalidError
	var requiredErr *errs.ValueIsRequiredError
	var outOfRangeErr *errs.ValueIsOutOfRangeError

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFoundErr):
		code = http.StatusNotFound
	case errors.As(err, &forbiddenErr):
		code = http.StatusForbidden
	case errors.As(err, &duplicateErr):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrPaymentFailed):
		code = http.StatusPaymentRequired
	case errors.As(err, &invalidErr), errors.As(err, &requiredErr), errors.As(err, &outOfRangeErr):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

func unauthorized(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func shipmentFromReadModel(item queries.ShipmentResponse) servers.Shipment {
	createdAt := item.CreatedAt
	response := servers.Shipment{
		Id:              item.ID.Bytes(),
		OwnerId:         item.OwnerID.Bytes(),
		PickupAddress:   item.PickupAddress,
		DeliveryAddress: item.DeliveryAddress,
		Weight:          item.Weight,
		Dimensions: servers.Dimensions{
			Length: item.Length,
			Width:  item.Width,
			Height: item.Height,
		},
		IsFragile:             item.IsFragile,
		DeliveryOption:        item.DeliveryOption,
		RateId:                item.RateID.Bytes(),
		Price:                 item.Price,
		Status:                item.Status,
		PreferredDeliveryTime: item.PreferredDeliveryTime,
		CreatedAt:             &createdAt,
	}
	if item.DeliveryAgentID != nil {
		agentID := item.DeliveryAgentID.Bytes()
		response.DeliveryAgentId = &agentID
	}
	if item.PreferredDeliveryDate != nil {
		response.PreferredDeliveryDate = &openapi_types.Date{Time: *item.PreferredDeliveryDate}
	}
	return response
}

func shipmentFromAggregate(aggregate *shipment.Shipment) servers.Shipment {
	response := servers.Shipment{
		Id:              aggregate.ID().Bytes(),
		OwnerId:         aggregate.OwnerID().Bytes(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Weight:          aggregate.Weight(),
		Dimensions: servers.Dimensions{
			Length: aggregate.Dimensions().Length(),
			Width:  aggregate.Dimensions().Width(),
			Height: aggregate.Dimensions().Height(),
		},
		IsFragile:             aggregate.IsFragile(),
		DeliveryOption:        aggregate.DeliveryOption().String(),
		RateId:                aggregate.RateID().Bytes(),
		Price:                 aggregate.Price(),
		Status:                aggregate.Status().String(),
		PreferredDeliveryTime: aggregate.PreferredDeliveryTime(),
	}
	if aggregate.DeliveryAgent() != nil {
		agentID := aggregate.DeliveryAgent().Bytes()
		response.DeliveryAgentId = &agentID
	}
	if aggregate.PreferredDeliveryDate() != nil {
		response.PreferredDeliveryDate = &openapi_types.Date{Time: *aggregate.PreferredDeliveryDate()}
	}
	return response
}

func paymentFromReadModel(item queries.PaymentResponse) servers.Payment {
	createdAt := item.CreatedAt
	response := servers.Payment{
		Id:         item.ID.Bytes(),
		ShipmentId: item.ShipmentID.Bytes(),
		UserId:     item.UserID.Bytes(),
		Amount:     item.Amount,
		Method:     item.Method,
		Status:     item.Status,
		CreatedAt:  &createdAt,
	}
	if item.TransactionDetails != "" {
		details := item.TransactionDetails
		response.TransactionDetails = &details
	}
	return response
}

func paymentFromAggregate(aggregate *payment.Payment) servers.Payment {
	response := servers.Payment{
		Id:         aggregate.ID().Bytes(),
		ShipmentId: aggregate.ShipmentID().Bytes(),
		UserId:     aggregate.UserID().Bytes(),
		Amount:     aggregate.Amount(),
		Method:     aggregate.Method().String(),
		Status:     aggregate.Status().String(),
	}
	if aggregate.TransactionDetails() != "" {
		details := aggregate.TransactionDetails()
		response.TransactionDetails = &details
	}
	return response
}
