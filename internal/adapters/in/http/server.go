package http

import (
	"errors"
	"net/http"

	"workshop/internal/adapters/in/http/servers"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/barcode"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/printqueue"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	processScanHandler      commands.ProcessScanCommandHandler
	addToPrintQueueHandler  commands.AddToPrintQueueCommandHandler
	markBatchPrintedHandler commands.MarkBatchPrintedCommandHandler

	// Query handlers
	getPrintQueueHandler  queries.GetPrintQueueQueryHandler
	getNextBatchHandler   queries.GetNextBatchQueryHandler
	getQueueStatusHandler queries.GetQueueStatusQueryHandler
	getOrderItemsHandler  queries.GetOrderItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processScanHandler commands.ProcessScanCommandHandler,
	addToPrintQueueHandler commands.AddToPrintQueueCommandHandler,
	markBatchPrintedHandler commands.MarkBatchPrintedCommandHandler,
	getPrintQueueHandler queries.GetPrintQueueQueryHandler,
	getNextBatchHandler queries.GetNextBatchQueryHandler,
	getQueueStatusHandler queries.GetQueueStatusQueryHandler,
	getOrderItemsHandler queries.GetOrderItemsQueryHandler,
) *Server {
	return &Server{
		processScanHandler:      processScanHandler,
		addToPrintQueueHandler:  addToPrintQueueHandler,
		markBatchPrintedHandler: markBatchPrintedHandler,
		getPrintQueueHandler:    getPrintQueueHandler,
		getNextBatchHandler:     getNextBatchHandler,
		getQueueStatusHandler:   getQueueStatusHandler,
		getOrderItemsHandler:    getOrderItemsHandler,
	}
}

// ProcessScan handles POST /api/v1/scans - applies one barcode scan to an item.
//
// The scan's station and scanner prefix come either from the raw barcode string
// or from the explicit stationCode/scannerPrefix fields.
func (s *Server) ProcessScan(ctx echo.Context) error {
	var req servers.ScanRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	scannedAt, scannerPrefix, err := resolveScanSource(req)
	if err != nil {
		return s.mapScanError(ctx, err)
	}

	itemID, err := kernel.UUIDFromBytes(req.ItemId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	var sessionWorkerID kernel.UUID
	if req.SessionWorkerId != nil {
		if sessionWorkerID, err = kernel.UUIDFromBytes(req.SessionWorkerId[:]); err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid session worker id")
		}
	}

	cmd, err := commands.NewProcessScanCommand(itemID, scannedAt, scannerPrefix, sessionWorkerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid scan data: "+err.Error())
	}

	result, err := s.processScanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapScanError(ctx, err)
	}

	response := servers.ScanResult{
		NewStatus:          result.NewStatus.String(),
		OrderStatusChanged: result.OrderStatusChanged,
	}
	if result.OrderStatusChanged {
		orderStatus := result.NewOrderStatus.String()
		response.NewOrderStatus = &orderStatus
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddToPrintQueue handles POST /api/v1/print-queue - queues paperwork for items.
func (s *Server) AddToPrintQueue(ctx echo.Context) error {
	var req servers.AddToQueueRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemIDs, err := toKernelUUIDs(req.ItemIds)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}
	addedBy, err := kernel.UUIDFromBytes(req.AddedBy[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid addedBy id")
	}

	cmd, err := commands.NewAddToPrintQueueCommand(itemIDs, addedBy)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid queue request: "+err.Error())
	}

	if handleErr := s.addToPrintQueueHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapQueueError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// MarkBatchPrinted handles POST /api/v1/print-queue/printed - confirms a printed batch.
func (s *Server) MarkBatchPrinted(ctx echo.Context) error {
	var req servers.MarkPrintedRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	entryIDs, err := toKernelUUIDs(req.EntryIds)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid entry id")
	}
	printedBy, err := kernel.UUIDFromBytes(req.PrintedBy[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid printedBy id")
	}

	cmd, err := commands.NewMarkBatchPrintedCommand(entryIDs, printedBy)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid confirmation: "+err.Error())
	}

	if handleErr := s.markBatchPrintedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapQueueError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPrintQueue handles GET /api/v1/print-queue - lists unprinted entries oldest first.
func (s *Server) GetPrintQueue(ctx echo.Context) error {
	query := queries.NewGetPrintQueueQuery()

	entries, err := s.getPrintQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapQueueError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQueueEntries(entries))
}

// GetNextBatch handles GET /api/v1/print-queue/next-batch - selects the batch to print.
func (s *Server) GetNextBatch(ctx echo.Context, params servers.GetNextBatchParams) error {
	allowPartial := params.AllowPartial != nil && *params.AllowPartial
	query := queries.NewGetNextBatchQuery(allowPartial)

	batch, err := s.getNextBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapQueueError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Batch{
		Entries:   toQueueEntries(batch.Entries),
		IsPartial: batch.IsPartial,
	})
}

// GetQueueStatus handles GET /api/v1/print-queue/status - returns queue counters.
func (s *Server) GetQueueStatus(ctx echo.Context) error {
	query := queries.NewGetQueueStatusQuery()

	status, err := s.getQueueStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapQueueError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.QueueStatus{
		UnprintedCount:    status.UnprintedCount,
		PrintedCount:      status.PrintedCount,
		OldestUnprintedAt: status.OldestUnprintedAt,
		StandardBatchSize: status.StandardBatchSize,
		CanPrintFullBatch: status.CanPrintFullBatch,
	})
}

// GetOrderItems handles GET /api/v1/orders/{orderId}/items - order progress screen.
func (s *Server) GetOrderItems(ctx echo.Context, orderID openapi_types.UUID) error {
	kernelID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderItemsQuery(kernelID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	items, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapQueueError(ctx, err)
	}

	response := make([]servers.OrderItem, len(items))
	for i, row := range items {
		response[i] = servers.OrderItem{
			ItemId:    row.ItemID.Bytes(),
			Reference: row.Reference,
			Status:    row.Status,
		}
		if row.LastStation != "" {
			lastStation := row.LastStation
			response[i].LastStation = &lastStation
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// resolveScanSource extracts the station and scanner prefix of a scan request.
// A raw barcode takes precedence; otherwise the explicit stationCode is decoded.
func resolveScanSource(req servers.ScanRequest) (station.Station, string, error) {
	if req.Barcode != nil && *req.Barcode != "" {
		decoded, err := barcode.Decode(*req.Barcode)
		if err != nil {
			return station.Unknown, "", err
		}
		return decoded.Station(), decoded.Prefix(), nil
	}

	if req.StationCode == nil {
		return station.Unknown, "", &barcode.MalformedBarcodeError{
			Input: "", Reason: "either barcode or stationCode is required",
		}
	}

	scannedAt, err := station.FromCode(*req.StationCode)
	if err != nil {
		return station.Unknown, "", err
	}

	prefix := ""
	if req.ScannerPrefix != nil {
		prefix = *req.ScannerPrefix
	}
	return scannedAt, prefix, nil
}

// mapScanError translates scan processing failures into HTTP status codes.
func (s *Server) mapScanError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, barcode.ErrMalformedBarcode):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, commands.ErrUnknownScanner):
		return errorResponse(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, commands.ErrScannerStationMismatch):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		// The typed error carries the item's current status so the kiosk
		// can explain the rejection.
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrStorageUnavailable):
		return errorResponse(ctx, http.StatusServiceUnavailable, "Storage temporarily unavailable")
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to process scan")
	}
}

// mapQueueError translates print queue failures into HTTP status codes.
func (s *Server) mapQueueError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, ports.ErrAlreadyQueued), errors.Is(err, printqueue.ErrAlreadyPrinted):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, queries.ErrQueueIsEmpty), errors.Is(err, queries.ErrBatchNotReady):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, ports.ErrQueueEntryNotFound), errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, ports.ErrStorageUnavailable):
		return errorResponse(ctx, http.StatusServiceUnavailable, "Storage temporarily unavailable")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to process request")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: message,
	})
}

func toKernelUUIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	result := make([]kernel.UUID, len(ids))
	for i, id := range ids {
		converted, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		result[i] = converted
	}
	return result, nil
}

func toQueueEntries(entries []queries.GetPrintQueueQueryResponse) []servers.QueueEntry {
	result := make([]servers.QueueEntry, len(entries))
	for i, entry := range entries {
		result[i] = servers.QueueEntry{
			EntryId:       entry.EntryID.Bytes(),
			ItemId:        entry.ItemID.Bytes(),
			ItemReference: entry.ItemReference,
			OrderNumber:   entry.OrderNumber,
			AddedAt:       entry.AddedAt,
			AddedBy:       entry.AddedBy.Bytes(),
		}
	}
	return result
}
