package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

var (
	// ErrUnknownScanner is the sentinel for scans carrying a prefix that is not
	// registered or not active.
	ErrUnknownScanner = errors.New("unknown scanner")

	// ErrScannerStationMismatch is the sentinel for scans where a scanner was
	// used at a station it is not homed at.
	ErrScannerStationMismatch = errors.New("scanner used at wrong station")
)

// UnknownScannerError identifies the rejected prefix.
type UnknownScannerError struct {
	Prefix string
}

func (e *UnknownScannerError) Error() string {
	return fmt.Sprintf("%s: prefix %q", ErrUnknownScanner, e.Prefix)
}

func (e *UnknownScannerError) Unwrap() error {
	return ErrUnknownScanner
}

// ScannerStationMismatchError carries both stations for operator guidance.
type ScannerStationMismatchError struct {
	Prefix      string
	HomeStation station.Station
	Station     station.Station
}

func (e *ScannerStationMismatchError) Error() string {
	return fmt.Sprintf("%s: scanner %q is homed at %s, scanned at %s",
		ErrScannerStationMismatch, e.Prefix, e.HomeStation, e.Station)
}

func (e *ScannerStationMismatchError) Unwrap() error {
	return ErrScannerStationMismatch
}

// ResolvedActor is the worker a scan is attributed to after scanner identity
// substitution.
type ResolvedActor struct {
	WorkerID   kernel.UUID
	ViaScanner bool
}

// ProcessScanResult reports what the scan changed.
type ProcessScanResult struct {
	NewStatus          item.Status
	OrderStatusChanged bool
	NewOrderStatus     order.Status
}

// ProcessScanCommandHandler applies one barcode scan to a production item.
// It resolves the acting worker, asks the TransitionEngine for the next status,
// maintains the item's processing log, and rolls the change up to the order,
// all inside one transaction with the item row locked.
//
// After the commit the handler appends an audit record and dispatches order
// notifications. Both are best-effort: failures are logged, never returned.
type ProcessScanCommandHandler struct {
	uowFactory ScanUoWFactory
	engine     services.TransitionEngine
	auditRepo  ports.AuditRepository
	notifier   ports.NotificationDispatcher
	logger     *slog.Logger
}

// NewProcessScanCommandHandler creates a handler for scan processing.
func NewProcessScanCommandHandler(
	uowFactory ScanUoWFactory,
	auditRepo ports.AuditRepository,
	notifier ports.NotificationDispatcher,
	logger *slog.Logger,
) ProcessScanCommandHandler {
	return ProcessScanCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewTransitionEngine(),
		auditRepo:  auditRepo,
		notifier:   notifier,
		logger:     logger.With("component", "process_scan"),
	}
}

// Handle processes one scan command.
//
// Rejections surface as typed errors: ErrUnknownScanner,
// ErrScannerStationMismatch, services.ErrInvalidTransition, or
// errs.ErrObjectNotFound for a missing item. On success the returned result
// carries the item's new status and any order status change.
func (h ProcessScanCommandHandler) Handle(
	ctx context.Context, command ProcessScanCommand,
) (ProcessScanResult, error) {
	if err := command.Validate(); err != nil {
		return ProcessScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessScanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := h.resolveActor(ctx, uow, command)
	if err != nil {
		return ProcessScanResult{}, err
	}

	itemRepo := uow.ItemRepository()
	trackedItem, err := itemRepo.GetForUpdate(ctx, command.ItemID())
	if err != nil {
		return ProcessScanResult{}, err
	}

	fromStatus := trackedItem.Status()
	newStatus, err := h.engine.NextStatus(fromStatus, command.Station(), trackedItem.LastStation())
	if err != nil {
		return ProcessScanResult{}, err
	}

	now := time.Now().UTC()

	if err = h.recordWork(ctx, uow, trackedItem, command.Station(), actor, newStatus, now); err != nil {
		return ProcessScanResult{}, err
	}

	if err = trackedItem.ApplyTransition(newStatus, command.Station()); err != nil {
		return ProcessScanResult{}, err
	}
	if err = itemRepo.Update(ctx, trackedItem); err != nil {
		return ProcessScanResult{}, err
	}

	changedOrder, err := h.rollupOrder(ctx, uow, trackedItem, newStatus, now)
	if err != nil {
		return ProcessScanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ProcessScanResult{}, err
	}

	h.appendAudit(ctx, command, actor, fromStatus, newStatus, now)
	h.notifyOrder(ctx, changedOrder)

	result := ProcessScanResult{NewStatus: newStatus}
	if changedOrder != nil {
		result.OrderStatusChanged = true
		result.NewOrderStatus = changedOrder.Status()
	}

	return result, nil
}

// resolveActor applies scanner identity substitution: a registered scanner's
// assigned worker takes precedence over whoever is logged into the kiosk.
func (h ProcessScanCommandHandler) resolveActor(
	ctx context.Context, uow ScanUoW, command ProcessScanCommand,
) (ResolvedActor, error) {
	if command.ScannerPrefix() == "" {
		return ResolvedActor{WorkerID: command.SessionWorkerID()}, nil
	}

	assignment, err := uow.ScannerRepository().GetByPrefix(ctx, command.ScannerPrefix())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ResolvedActor{}, &UnknownScannerError{Prefix: command.ScannerPrefix()}
	}
	if err != nil {
		return ResolvedActor{}, err
	}
	if !assignment.IsActive() {
		return ResolvedActor{}, &UnknownScannerError{Prefix: command.ScannerPrefix()}
	}

	if assignment.HomeStation() != command.Station() {
		return ResolvedActor{}, &ScannerStationMismatchError{
			Prefix:      command.ScannerPrefix(),
			HomeStation: assignment.HomeStation(),
			Station:     command.Station(),
		}
	}

	return ResolvedActor{WorkerID: assignment.WorkerID(), ViaScanner: true}, nil
}

// recordWork closes the item's open log entry and opens the next one. Ready
// items get a zero-duration completion row instead of an open entry.
func (h ProcessScanCommandHandler) recordWork(
	ctx context.Context, uow ScanUoW, trackedItem *item.ProductionItem,
	scannedAt station.Station, actor ResolvedActor, newStatus item.Status, now time.Time,
) error {
	worklogRepo := uow.WorkLogRepository()

	openEntry, err := worklogRepo.GetOpenByItem(ctx, trackedItem.ID())
	if err != nil {
		return err
	}
	if openEntry != nil {
		if err = openEntry.Close(now, ""); err != nil {
			return err
		}
		if err = worklogRepo.Update(ctx, openEntry); err != nil {
			return err
		}
	}

	var entry *worklog.ProcessingLogEntry
	if newStatus == item.Ready {
		entry, err = worklog.NewCompletionLogEntry(
			kernel.NewUUID(), trackedItem.ID(), actor.WorkerID, scannedAt, now, "finalized")
	} else {
		entry, err = worklog.NewProcessingLogEntry(
			kernel.NewUUID(), trackedItem.ID(), actor.WorkerID, scannedAt, now)
	}
	if err != nil {
		return err
	}

	return worklogRepo.Add(ctx, entry)
}

// rollupOrder propagates the item change to its order. Returns the order when
// its status changed, nil otherwise.
func (h ProcessScanCommandHandler) rollupOrder(
	ctx context.Context, uow ScanUoW, trackedItem *item.ProductionItem,
	newStatus item.Status, now time.Time,
) (*order.Order, error) {
	if newStatus != item.Cutting && newStatus != item.Ready {
		return nil, nil
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, trackedItem.OrderID())
	if err != nil {
		return nil, err
	}

	if newStatus == item.Cutting {
		if o.Status() != order.Approved {
			return nil, nil
		}
		if err = o.StartProcessing(); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		return o, nil
	}

	// newStatus == Ready: the order ships once every item reached Ready.
	items, err := uow.ItemRepository().GetAllByOrder(ctx, trackedItem.OrderID())
	if err != nil {
		return nil, err
	}
	for _, sibling := range items {
		status := sibling.Status()
		if sibling.ID().IsEqual(trackedItem.ID()) {
			status = newStatus
		}
		if status != item.Ready {
			return nil, nil
		}
	}

	if o.Status() == order.ReadyToShip {
		return nil, nil
	}
	if err = o.MarkReadyToShip(now); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (h ProcessScanCommandHandler) appendAudit(
	ctx context.Context, command ProcessScanCommand, actor ResolvedActor,
	fromStatus, toStatus item.Status, now time.Time,
) {
	record, err := audit.NewScanRecord(
		command.ItemID(), command.Station(), actor.WorkerID, fromStatus, toStatus, now)
	if err != nil {
		h.logger.Warn("building audit record failed", "error", err)
		return
	}

	if err = h.auditRepo.Append(ctx, record); err != nil {
		h.logger.Warn("appending audit record failed",
			"item_id", command.ItemID().String(), "error", err)
	}
}

func (h ProcessScanCommandHandler) notifyOrder(ctx context.Context, changedOrder *order.Order) {
	if changedOrder == nil {
		return
	}

	var err error
	switch changedOrder.Status() {
	case order.Processing:
		err = h.notifier.OrderProcessing(ctx, changedOrder)
	case order.ReadyToShip:
		err = h.notifier.OrderReady(ctx, changedOrder)
	default:
		return
	}

	if err != nil {
		h.logger.Warn("order notification failed",
			"order_id", changedOrder.ID().String(),
			"order_status", changedOrder.Status().String(),
			"error", err)
	}
}
