package commands_test

import (
	"context"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/audit"
	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/printqueue"
	"workshop/internal/core/domain/model/scanner"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, aggregate *item.ProductionItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, aggregate *item.ProductionItem) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.ProductionItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.ProductionItem), args.Error(1)
}

func (m *MockItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*item.ProductionItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.ProductionItem), args.Error(1)
}

func (m *MockItemRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.ProductionItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*item.ProductionItem), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockWorkLogRepository struct{ mock.Mock }

func (m *MockWorkLogRepository) Add(ctx context.Context, entry *worklog.ProcessingLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWorkLogRepository) Update(ctx context.Context, entry *worklog.ProcessingLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWorkLogRepository) GetOpenByItem(
	ctx context.Context, itemID kernel.UUID,
) (*worklog.ProcessingLogEntry, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*worklog.ProcessingLogEntry), args.Error(1)
}

type MockQueueRepository struct{ mock.Mock }

func (m *MockQueueRepository) Add(ctx context.Context, entry *printqueue.QueueEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQueueRepository) GetAllUnprinted(ctx context.Context, limit int) ([]*printqueue.QueueEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*printqueue.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) CountUnprinted(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockQueueRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*printqueue.QueueEntry, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*printqueue.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) MarkPrinted(ctx context.Context, ids []kernel.UUID, printedBy kernel.UUID) error {
	args := m.Called(ctx, ids, printedBy)
	return args.Error(0)
}

type MockScannerRepository struct{ mock.Mock }

func (m *MockScannerRepository) GetByPrefix(
	ctx context.Context, prefix string,
) (*scanner.ScannerAssignment, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scanner.ScannerAssignment), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, record audit.ScanRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) OrderProcessing(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) OrderReady(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockScanUoW struct{ mock.Mock }

func (m *MockScanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScanUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockScanUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockScanUoW) WorkLogRepository() ports.WorkLogRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkLogRepository)
}

func (m *MockScanUoW) ScannerRepository() ports.ScannerRepository {
	args := m.Called()
	return args.Get(0).(ports.ScannerRepository)
}

type MockScanUoWFactory struct{ mock.Mock }

func (m *MockScanUoWFactory) Create() commands.ScanUoW {
	args := m.Called()
	return args.Get(0).(commands.ScanUoW)
}

type MockQueueUoW struct{ mock.Mock }

func (m *MockQueueUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQueueUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQueueUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockQueueUoW) QueueRepository() ports.QueueRepository {
	args := m.Called()
	return args.Get(0).(ports.QueueRepository)
}

type MockQueueUoWFactory struct{ mock.Mock }

func (m *MockQueueUoWFactory) Create() commands.QueueUoW {
	args := m.Called()
	return args.Get(0).(commands.QueueUoW)
}
