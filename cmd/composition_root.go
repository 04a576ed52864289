package cmd

import (
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.SystemClock{},
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() (*commands.CreateOrderCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() (*commands.UpdateOrderStatusCommandHandler, error) {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.config.StatusPolicy, c.clock)
}

func (c *CompositionRoot) CreatePruneOrderSequencesCommandHandler() (*commands.PruneOrderSequencesCommandHandler, error) {
	return commands.NewPruneOrderSequencesCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() (*commands.CreateMenuItemCommandHandler, error) {
	return commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() (*commands.UpdateMenuItemCommandHandler, error) {
	return commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() (*commands.DeleteMenuItemCommandHandler, error) {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateToggleMenuItemAvailabilityCommandHandler() (
	*commands.ToggleMenuItemAvailabilityCommandHandler, error,
) {
	return commands.NewToggleMenuItemAvailabilityCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTopSellingItemsQueryHandler() queries.GetTopSellingItemsQueryHandler {
	return queries.NewGetTopSellingItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchMenuItemsQueryHandler() queries.SearchMenuItemsQueryHandler {
	return queries.NewSearchMenuItemsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer(logger *slog.Logger) (*httpin.Server, error) {
	h := httpin.Handlers{
		GetOrder:        c.CreateGetOrderQueryHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		TopSellingItems: c.CreateGetTopSellingItemsQueryHandler(),
		GetMenuItem:     c.CreateGetMenuItemQueryHandler(),
		ListMenuItems:   c.CreateListMenuItemsQueryHandler(),
		SearchMenuItems: c.CreateSearchMenuItemsQueryHandler(),
	}

	var err error
	if h.CreateOrder, err = c.CreateCreateOrderCommandHandler(); err != nil {
		return nil, err
	}
	if h.UpdateOrderStatus, err = c.CreateUpdateOrderStatusCommandHandler(); err != nil {
		return nil, err
	}
	if h.CreateMenuItem, err = c.CreateCreateMenuItemCommandHandler(); err != nil {
		return nil, err
	}
	if h.UpdateMenuItem, err = c.CreateUpdateMenuItemCommandHandler(); err != nil {
		return nil, err
	}
	if h.DeleteMenuItem, err = c.CreateDeleteMenuItemCommandHandler(); err != nil {
		return nil, err
	}
	if h.ToggleMenuItemAvailability, err = c.CreateToggleMenuItemAvailabilityCommandHandler(); err != nil {
		return nil, err
	}

	return httpin.NewServer(h, logger), nil
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	prune, err := c.CreatePruneOrderSequencesCommandHandler()
	if err != nil {
		return nil, err
	}
	pruning := jobs.NewSequencePruningJob(prune, c.config.SequenceRetention, c.config.PruneSchedule, logger)
	return jobs.NewJobManager(pruning), nil
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
