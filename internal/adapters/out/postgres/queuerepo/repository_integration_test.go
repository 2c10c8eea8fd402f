package queuerepo_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	postgres_adapter "workshop/internal/adapters/out/postgres"
	"workshop/internal/core/domain/model/item"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/printqueue"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueueRepositoryIntegrationTestSuite exercises the print queue repository
// against a real PostgreSQL database, in particular the partial unique index
// arbitration between concurrent adds.
type QueueRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	orderID   kernel.UUID
	itemID    kernel.UUID
}

func (suite *QueueRepositoryIntegrationTestSuite) SetupSuite() {
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
}

// SetupTest resets the tables and seeds one order with one item.
func (suite *QueueRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	err := suite.db.Exec("TRUNCATE TABLE orders, items, print_queue_entries").Error
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", order.PriorityNormal)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.orderID = o.ID()

	i, err := item.NewProductionItem(kernel.NewUUID(), o.ID(), "P-1")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, i))
	suite.itemID = i.ID()

	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueueRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueueRepositoryIntegrationTestSuite) addEntry(
	ctx context.Context, itemID kernel.UUID, addedAt time.Time,
) (*printqueue.QueueEntry, error) {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	entry, err := printqueue.NewQueueEntry(kernel.NewUUID(), itemID, kernel.NewUUID(), addedAt)
	if err != nil {
		return nil, err
	}
	if err = uow.QueueRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	return entry, uow.Commit(ctx)
}

func (suite *QueueRepositoryIntegrationTestSuite) seedItem(ctx context.Context, reference string) kernel.UUID {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	i, err := item.NewProductionItem(kernel.NewUUID(), suite.orderID, reference)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, i))
	suite.Require().NoError(uow.Commit(ctx))
	return i.ID()
}

func (suite *QueueRepositoryIntegrationTestSuite) TestAdd_DuplicateUnprintedRejected() {
	ctx := context.Background()

	_, err := suite.addEntry(ctx, suite.itemID, time.Now())
	suite.Require().NoError(err)

	_, err = suite.addEntry(ctx, suite.itemID, time.Now())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, ports.ErrAlreadyQueued)

	var queuedErr *ports.AlreadyQueuedError
	suite.Require().True(errors.As(err, &queuedErr))
	suite.True(queuedErr.ItemID.IsEqual(suite.itemID))
}

// TestAdd_ConcurrentAddsOneWinner races N goroutines adding the same item.
// The partial unique index must let exactly one through.
func (suite *QueueRepositoryIntegrationTestSuite) TestAdd_UnknownItemRejected() {
	ctx := context.Background()

	_, err := suite.addEntry(ctx, kernel.NewUUID(), time.Now())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().NotErrorIs(err, ports.ErrAlreadyQueued)

	// The rejected entry must not occupy the item's unprinted slot.
	uow := suite.factory.Create()
	count, err := uow.QueueRepository().CountUnprinted(ctx)
	suite.Require().NoError(err)
	suite.Equal(0, count)
}

func (suite *QueueRepositoryIntegrationTestSuite) TestAdd_ConcurrentAddsOneWinner() {
	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.addEntry(ctx, suite.itemID, time.Now())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ports.ErrAlreadyQueued):
			conflicts++
		default:
			suite.Failf("unexpected error", "got %v", err)
		}
	}

	suite.Equal(1, wins, "exactly one concurrent add must win")
	suite.Equal(workers-1, conflicts)

	uow := suite.factory.Create()
	count, err := uow.QueueRepository().CountUnprinted(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *QueueRepositoryIntegrationTestSuite) TestAdd_AllowedAgainAfterPrinting() {
	ctx := context.Background()

	entry, err := suite.addEntry(ctx, suite.itemID, time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(
		uow.QueueRepository().MarkPrinted(ctx, []kernel.UUID{entry.ID()}, kernel.NewUUID()))
	suite.Require().NoError(uow.Commit(ctx))

	// A reprint request for the same item may now be queued again.
	_, err = suite.addEntry(ctx, suite.itemID, time.Now())
	suite.Require().NoError(err)
}

func (suite *QueueRepositoryIntegrationTestSuite) TestGetAllUnprinted_OldestFirst() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	var want []kernel.UUID
	for idx := range 5 {
		itemID := suite.seedItem(ctx, "P-FIFO-"+string(rune('A'+idx)))
		entry, err := suite.addEntry(ctx, itemID, base.Add(time.Duration(idx)*time.Minute))
		suite.Require().NoError(err)
		want = append(want, entry.ID())
	}

	uow := suite.factory.Create()
	entries, err := uow.QueueRepository().GetAllUnprinted(ctx, 0)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 5)
	for idx, entry := range entries {
		suite.True(entry.ID().IsEqual(want[idx]), "entry %d out of order", idx)
	}

	batch, err := uow.QueueRepository().GetAllUnprinted(ctx, 4)
	suite.Require().NoError(err)
	suite.Require().Len(batch, 4)
	for idx, entry := range batch {
		suite.True(entry.ID().IsEqual(want[idx]))
	}
}

func (suite *QueueRepositoryIntegrationTestSuite) TestMarkPrinted_AllOrNothing() {
	ctx := context.Background()

	first, err := suite.addEntry(ctx, suite.itemID, time.Now())
	suite.Require().NoError(err)

	otherItem := suite.seedItem(ctx, "P-2")
	second, err := suite.addEntry(ctx, otherItem, time.Now())
	suite.Require().NoError(err)

	// Print the first entry so a second confirmation of it must fail.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(
		uow.QueueRepository().MarkPrinted(ctx, []kernel.UUID{first.ID()}, kernel.NewUUID()))
	suite.Require().NoError(uow.Commit(ctx))

	retry := suite.factory.Create()
	suite.Require().NoError(retry.Begin(ctx))
	err = retry.QueueRepository().MarkPrinted(
		ctx, []kernel.UUID{first.ID(), second.ID()}, kernel.NewUUID())
	suite.Require().ErrorIs(err, printqueue.ErrAlreadyPrinted)
	suite.Require().NoError(retry.Rollback(ctx))

	// The rollback must leave the second entry unprinted.
	verify := suite.factory.Create()
	count, err := verify.QueueRepository().CountUnprinted(ctx)
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *QueueRepositoryIntegrationTestSuite) TestMarkPrinted_MissingEntry() {
	ctx := context.Background()

	entry, err := suite.addEntry(ctx, suite.itemID, time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.QueueRepository().MarkPrinted(
		ctx, []kernel.UUID{entry.ID(), kernel.NewUUID()}, kernel.NewUUID())
	suite.Require().ErrorIs(err, ports.ErrQueueEntryNotFound)
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestQueueRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueueRepositoryIntegrationTestSuite))
}
