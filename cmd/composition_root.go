package cmd

import (
	"log/slog"

	httpadapter "workorders/internal/adapters/in/http"
	"workorders/internal/adapters/out/advisor"
	"workorders/internal/adapters/out/postgres"
	"workorders/internal/adapters/out/seed"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/ports"
	"workorders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	advisor    ports.LogisticsAdvisor
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		advisor:    advisor.NewClient(config.AdvisorURL, config.AdvisorAPIKey, config.AdvisorModel),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	return commands.NewCreateWorkOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAddTaskCommandHandler() commands.AddTaskCommandHandler {
	return commands.NewAddTaskCommandHandler(c.workOrderUoW())
}

func (c *CompositionRoot) CreateUpdateTaskStatusCommandHandler() commands.UpdateTaskStatusCommandHandler {
	return commands.NewUpdateTaskStatusCommandHandler(c.workOrderUoW())
}

func (c *CompositionRoot) CreateAssignPerformerCommandHandler() commands.AssignPerformerCommandHandler {
	return commands.NewAssignPerformerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateWorkOrderTypeCommandHandler() commands.CreateWorkOrderTypeCommandHandler {
	return commands.NewCreateWorkOrderTypeCommandHandler(c.workOrderTypeUoW())
}

func (c *CompositionRoot) CreateUpdateWorkOrderTypeCommandHandler() commands.UpdateWorkOrderTypeCommandHandler {
	return commands.NewUpdateWorkOrderTypeCommandHandler(c.workOrderTypeUoW())
}

func (c *CompositionRoot) CreateDeleteWorkOrderTypeCommandHandler() commands.DeleteWorkOrderTypeCommandHandler {
	return commands.NewDeleteWorkOrderTypeCommandHandler(c.workOrderTypeUoW())
}

func (c *CompositionRoot) CreateListWorkOrdersQueryHandler() queries.ListWorkOrdersQueryHandler {
	r := c.readers()
	return queries.NewListWorkOrdersQueryHandler(r.WorkOrderRepository(), r.WorkOrderTypeRepository(), r.PerformerRepository())
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	r := c.readers()
	return queries.NewGetWorkOrderQueryHandler(r.WorkOrderRepository(), r.WorkOrderTypeRepository(), r.PerformerRepository())
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	r := c.readers()
	return queries.NewGetStatisticsQueryHandler(r.WorkOrderRepository(), r.WorkOrderTypeRepository())
}

func (c *CompositionRoot) CreateGetLogisticsAdviceQueryHandler() queries.GetLogisticsAdviceQueryHandler {
	return queries.NewGetLogisticsAdviceQueryHandler(c.readers().WorkOrderRepository(), c.advisor, c.logger)
}

func (c *CompositionRoot) CreateGetAllPerformersQueryHandler() queries.GetAllPerformersQueryHandler {
	return queries.NewGetAllPerformersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllWorkOrderTypesQueryHandler() queries.GetAllWorkOrderTypesQueryHandler {
	return queries.NewGetAllWorkOrderTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateWorkOrder:     c.CreateCreateWorkOrderCommandHandler(),
		AddTask:             c.CreateAddTaskCommandHandler(),
		UpdateTaskStatus:    c.CreateUpdateTaskStatusCommandHandler(),
		AssignPerformer:     c.CreateAssignPerformerCommandHandler(),
		CreateWorkOrderType: c.CreateCreateWorkOrderTypeCommandHandler(),
		UpdateWorkOrderType: c.CreateUpdateWorkOrderTypeCommandHandler(),
		DeleteWorkOrderType: c.CreateDeleteWorkOrderTypeCommandHandler(),
		ListWorkOrders:      c.CreateListWorkOrdersQueryHandler(),
		GetWorkOrder:        c.CreateGetWorkOrderQueryHandler(),
		GetAllPerformers:    c.CreateGetAllPerformersQueryHandler(),
		GetAllTypes:         c.CreateGetAllWorkOrderTypesQueryHandler(),
		GetStatistics:       c.CreateGetStatisticsQueryHandler(),
		GetLogisticsAdvice:  c.CreateGetLogisticsAdviceQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStatisticsQueryHandler(),
		c.CreateGetLogisticsAdviceQueryHandler(),
		jobs.Schedules{Report: c.config.ReportSchedule, Advice: c.config.AdviceSchedule},
		c.logger,
	)
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	return seed.NewLoader(c.uowFactory)
}

// Migrate brings the schema up to date.
func (c *CompositionRoot) Migrate() error {
	return postgres.Migrate(c.gormDB)
}

// readers returns repositories outside of any transaction for the read side.
func (c *CompositionRoot) readers() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workOrderUoW() commands.WorkOrderUoWFactory {
	return FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) workOrderTypeUoW() commands.WorkOrderTypeUoWFactory {
	return FuncWorkOrderTypeUoWFactory(func() commands.WorkOrderTypeUoW {
		return c.uowFactory.Create()
	})
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncWorkOrderTypeUoWFactory func() commands.WorkOrderTypeUoW

func (f FuncWorkOrderTypeUoWFactory) Create() commands.WorkOrderTypeUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
