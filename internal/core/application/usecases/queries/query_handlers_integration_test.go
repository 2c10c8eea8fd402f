package queries_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	postgres_adapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/printqueue"
	"workshop/internal/core/domain/model/station"
	"workshop/internal/core/domain/model/worklog"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the raw-SQL query handlers
// against a real PostgreSQL database: the queue views, the batch selection
// rules, and the joins the screens depend on.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory

	printQueueHandler    queries.GetPrintQueueQueryHandler
	nextBatchHandler     queries.GetNextBatchQueryHandler
	queueStatusHandler   queries.GetQueueStatusQueryHandler
	orderItemsHandler    queries.GetOrderItemsQueryHandler
	staleWorkLogsHandler queries.GetStaleWorkLogsQueryHandler
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)

	policy, err := services.NewBatchPolicy(services.DefaultStandardBatchSize)
	suite.Require().NoError(err)

	suite.printQueueHandler = queries.NewGetPrintQueueQueryHandler(db)
	suite.nextBatchHandler = queries.NewGetNextBatchQueryHandler(db, policy)
	suite.queueStatusHandler = queries.NewGetQueueStatusQueryHandler(db, policy)
	suite.orderItemsHandler = queries.NewGetOrderItemsQueryHandler(db)
	suite.staleWorkLogsHandler = queries.NewGetStaleWorkLogsQueryHandler(db)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, items, processing_logs, print_queue_entries, scanner_assignments, scan_records").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) seedOrder(number string) kernel.UUID {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := order.NewOrder(kernel.NewUUID(), number, order.PriorityNormal)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	return o.ID()
}

func (suite *QueryHandlersIntegrationTestSuite) seedItem(
	orderID kernel.UUID, reference string,
) *item.ProductionItem {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	i, err := item.NewProductionItem(kernel.NewUUID(), orderID, reference)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, i))
	suite.Require().NoError(uow.Commit(ctx))

	return i
}

func (suite *QueryHandlersIntegrationTestSuite) queueEntry(
	itemID kernel.UUID, addedAt time.Time,
) *printqueue.QueueEntry {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	entry, err := printqueue.NewQueueEntry(kernel.NewUUID(), itemID, kernel.NewUUID(), addedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.QueueRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	return entry
}

// queueFifoScenario seeds five orders with one item each and queues them a
// minute apart: ORD-1/P-1 is the oldest entry, ORD-5/P-5 the newest.
func (suite *QueryHandlersIntegrationTestSuite) queueFifoScenario(
	count int, base time.Time,
) []*printqueue.QueueEntry {
	numbers := []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4", "ORD-5"}
	references := []string{"P-1", "P-2", "P-3", "P-4", "P-5"}

	entries := make([]*printqueue.QueueEntry, 0, count)
	for idx := range count {
		orderID := suite.seedOrder(numbers[idx])
		i := suite.seedItem(orderID, references[idx])
		entries = append(entries, suite.queueEntry(i.ID(), base.Add(time.Duration(idx)*time.Minute)))
	}

	return entries
}

func (suite *QueryHandlersIntegrationTestSuite) markPrinted(entryIDs ...kernel.UUID) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.QueueRepository().MarkPrinted(ctx, entryIDs, kernel.NewUUID()))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetQueueStatus_EmptyQueue() {
	status, err := suite.queueStatusHandler.Handle(context.Background(), queries.NewGetQueueStatusQuery())

	suite.Require().NoError(err)
	suite.Equal(0, status.UnprintedCount)
	suite.Equal(0, status.PrintedCount)
	suite.Nil(status.OldestUnprintedAt)
	suite.Equal(services.DefaultStandardBatchSize, status.StandardBatchSize)
	suite.False(status.CanPrintFullBatch)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetNextBatch_EmptyQueue() {
	ctx := context.Background()

	_, err := suite.nextBatchHandler.Handle(ctx, queries.NewGetNextBatchQuery(false))
	suite.Require().ErrorIs(err, queries.ErrQueueIsEmpty)

	// An empty queue is "nothing to print", not a confirmable partial batch.
	_, err = suite.nextBatchHandler.Handle(ctx, queries.NewGetNextBatchQuery(true))
	suite.Require().ErrorIs(err, queries.ErrQueueIsEmpty)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetNextBatch_BelowStandardSize() {
	ctx := context.Background()
	want := suite.queueFifoScenario(3, time.Now().UTC().Add(-time.Hour))

	_, err := suite.nextBatchHandler.Handle(ctx, queries.NewGetNextBatchQuery(false))
	suite.Require().ErrorIs(err, queries.ErrBatchNotReady)

	batch, err := suite.nextBatchHandler.Handle(ctx, queries.NewGetNextBatchQuery(true))
	suite.Require().NoError(err)
	suite.True(batch.IsPartial)
	suite.Require().Len(batch.Entries, 3)
	for idx, entry := range batch.Entries {
		suite.True(entry.EntryID.IsEqual(want[idx].ID()), "entry %d out of order", idx)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetQueueStatus_FullBatchAfterFourthAdd() {
	base := time.Now().UTC().Add(-time.Hour)
	entries := suite.queueFifoScenario(3, base)

	status, err := suite.queueStatusHandler.Handle(context.Background(), queries.NewGetQueueStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(3, status.UnprintedCount)
	suite.False(status.CanPrintFullBatch)
	suite.Require().NotNil(status.OldestUnprintedAt)
	suite.WithinDuration(entries[0].AddedAt(), *status.OldestUnprintedAt, time.Second)

	orderID := suite.seedOrder("ORD-4")
	fourth := suite.seedItem(orderID, "P-4")
	suite.queueEntry(fourth.ID(), base.Add(3*time.Minute))

	status, err = suite.queueStatusHandler.Handle(context.Background(), queries.NewGetQueueStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(4, status.UnprintedCount)
	suite.True(status.CanPrintFullBatch)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetNextBatch_CapsAtStandardSize() {
	ctx := context.Background()
	want := suite.queueFifoScenario(5, time.Now().UTC().Add(-time.Hour))

	// Five entries waiting: the batch is the four oldest, no confirmation needed.
	batch, err := suite.nextBatchHandler.Handle(ctx, queries.NewGetNextBatchQuery(false))
	suite.Require().NoError(err)
	suite.False(batch.IsPartial)
	suite.Require().Len(batch.Entries, services.DefaultStandardBatchSize)
	for idx, entry := range batch.Entries {
		suite.True(entry.EntryID.IsEqual(want[idx].ID()), "entry %d out of order", idx)
	}
	suite.Equal("P-1", batch.Entries[0].ItemReference)
	suite.Equal("ORD-1", batch.Entries[0].OrderNumber)

	// Printing the batch leaves the fifth entry first in line.
	suite.markPrinted(
		want[0].ID(), want[1].ID(), want[2].ID(), want[3].ID())

	remaining, err := suite.nextBatchHandler.Handle(ctx, queries.NewGetNextBatchQuery(true))
	suite.Require().NoError(err)
	suite.True(remaining.IsPartial)
	suite.Require().Len(remaining.Entries, 1)
	suite.True(remaining.Entries[0].EntryID.IsEqual(want[4].ID()))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetPrintQueue_UnprintedOldestFirst() {
	ctx := context.Background()
	want := suite.queueFifoScenario(5, time.Now().UTC().Add(-time.Hour))

	entries, err := suite.printQueueHandler.Handle(ctx, queries.NewGetPrintQueueQuery())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 5)
	for idx, entry := range entries {
		suite.True(entry.EntryID.IsEqual(want[idx].ID()), "entry %d out of order", idx)
		suite.True(entry.ItemID.IsEqual(want[idx].ItemID()))
		suite.NotEmpty(entry.ItemReference)
		suite.NotEmpty(entry.OrderNumber)
	}

	// Confirmed entries leave the queue view but stay counted as printed.
	suite.markPrinted(want[0].ID())

	entries, err = suite.printQueueHandler.Handle(ctx, queries.NewGetPrintQueueQuery())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 4)
	suite.True(entries[0].EntryID.IsEqual(want[1].ID()))

	status, err := suite.queueStatusHandler.Handle(ctx, queries.NewGetQueueStatusQuery())
	suite.Require().NoError(err)
	suite.Equal(4, status.UnprintedCount)
	suite.Equal(1, status.PrintedCount)
	suite.Require().NotNil(status.OldestUnprintedAt)
	suite.WithinDuration(want[1].AddedAt(), *status.OldestUnprintedAt, time.Second)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderItems_StatusesAndLastStation() {
	ctx := context.Background()
	orderID := suite.seedOrder("ORD-1")
	first := suite.seedItem(orderID, "P-A")
	second := suite.seedItem(orderID, "P-B")

	// Move the second item into Cutting so it carries a last station.
	suite.Require().NoError(second.ApplyTransition(item.Cutting, station.Office))
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Update(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetOrderItemsQuery(orderID)
	suite.Require().NoError(err)

	rows, err := suite.orderItemsHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	suite.True(rows[0].ItemID.IsEqual(first.ID()))
	suite.Equal("P-A", rows[0].Reference)
	suite.Equal("NotStarted", rows[0].Status)
	suite.Empty(rows[0].LastStation)

	suite.True(rows[1].ItemID.IsEqual(second.ID()))
	suite.Equal("P-B", rows[1].Reference)
	suite.Equal("Cutting", rows[1].Status)
	suite.Equal("Office", rows[1].LastStation)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrderItems_UnknownOrder() {
	query, err := queries.NewGetOrderItemsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	rows, err := suite.orderItemsHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetStaleWorkLogs_OnlyOpenEntriesPastThreshold() {
	ctx := context.Background()
	orderID := suite.seedOrder("ORD-1")
	staleItem := suite.seedItem(orderID, "P-STALE")
	freshItem := suite.seedItem(orderID, "P-FRESH")
	doneItem := suite.seedItem(orderID, "P-DONE")

	workerID := kernel.NewUUID()
	staleStart := time.Now().UTC().Add(-9 * time.Hour)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	staleEntry, err := worklog.NewProcessingLogEntry(
		kernel.NewUUID(), staleItem.ID(), workerID, station.Sewing, staleStart)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, staleEntry))

	freshEntry, err := worklog.NewProcessingLogEntry(
		kernel.NewUUID(), freshItem.ID(), workerID, station.Cutting, time.Now().UTC().Add(-5*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, freshEntry))

	// Old but closed: completion rows never count as stale.
	doneEntry, err := worklog.NewCompletionLogEntry(
		kernel.NewUUID(), doneItem.ID(), workerID, station.Office, staleStart, "finalized")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, doneEntry))

	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetStaleWorkLogsQuery(8 * time.Hour)
	suite.Require().NoError(err)

	entries, err := suite.staleWorkLogsHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)

	suite.True(entries[0].EntryID.IsEqual(staleEntry.ID()))
	suite.True(entries[0].ItemID.IsEqual(staleItem.ID()))
	suite.Equal("P-STALE", entries[0].ItemReference)
	suite.Equal(station.Sewing, entries[0].Station)
	suite.True(entries[0].WorkerID.IsEqual(workerID))
	suite.WithinDuration(staleStart, entries[0].StartedAt, time.Second)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
