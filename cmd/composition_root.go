package cmd

import (
	"log/slog"

	httpin "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/notify"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/auditrepo"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/services"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.BatchPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	policy, err := services.NewBatchPolicy(config.StandardBatchSize)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateProcessScanCommandHandler() commands.ProcessScanCommandHandler {
	var f commands.ScanUoWFactory = FuncScanUoWFactory(func() commands.ScanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessScanCommandHandler(
		f,
		auditrepo.NewGormAuditRepository(c.gormDB),
		notify.NewSlogNotificationDispatcher(c.logger),
		c.logger,
	)
}

func (c *CompositionRoot) CreateAddToPrintQueueCommandHandler() commands.AddToPrintQueueCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToPrintQueueCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkBatchPrintedCommandHandler() commands.MarkBatchPrintedCommandHandler {
	var f commands.QueueUoWFactory = FuncQueueUoWFactory(func() commands.QueueUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkBatchPrintedCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPrintQueueQueryHandler() queries.GetPrintQueueQueryHandler {
	return queries.NewGetPrintQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextBatchQueryHandler() queries.GetNextBatchQueryHandler {
	return queries.NewGetNextBatchQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetQueueStatusQueryHandler() queries.GetQueueStatusQueryHandler {
	return queries.NewGetQueueStatusQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleWorkLogsQueryHandler() queries.GetStaleWorkLogsQueryHandler {
	return queries.NewGetStaleWorkLogsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every command and query handler into the echo server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateProcessScanCommandHandler(),
		c.CreateAddToPrintQueueCommandHandler(),
		c.CreateMarkBatchPrintedCommandHandler(),
		c.CreateGetPrintQueueQueryHandler(),
		c.CreateGetNextBatchQueryHandler(),
		c.CreateGetQueueStatusQueryHandler(),
		c.CreateGetOrderItemsQueryHandler(),
	)
}

// CreateJobManager wires the background jobs. The manager is started and
// stopped explicitly by main.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetQueueStatusQueryHandler(),
		c.CreateGetStaleWorkLogsQueryHandler(),
		c.logger,
	)
}

type FuncScanUoWFactory func() commands.ScanUoW

func (f FuncScanUoWFactory) Create() commands.ScanUoW {
	return f()
}

type FuncQueueUoWFactory func() commands.QueueUoW

func (f FuncQueueUoWFactory) Create() commands.QueueUoW {
	return f()
}
