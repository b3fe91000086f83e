package cmd

import (
	"log/slog"

	httpin "loadflow/internal/adapters/in/http"
	"loadflow/internal/adapters/out/audit"
	"loadflow/internal/adapters/out/postgres"
	"loadflow/internal/core/application/usecases/commands"
	"loadflow/internal/core/application/usecases/queries"
	"loadflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config        Config
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	auditRecorder *audit.BufferedRecorder
	logger        *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		auditRecorder: audit.NewBufferedRecorder(audit.NewGormSink(gormDB)),
		logger:        logger,
	}
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadCommandHandler(f, c.auditRecorder, c.logger)
}

func (c *CompositionRoot) CreateAdvanceLoadCommandHandler() commands.AdvanceLoadCommandHandler {
	return commands.NewAdvanceLoadCommandHandler(c.loadUoWFactory(), c.auditRecorder, c.logger)
}

func (c *CompositionRoot) CreateRetreatLoadCommandHandler() commands.RetreatLoadCommandHandler {
	return commands.NewRetreatLoadCommandHandler(c.loadUoWFactory(), c.auditRecorder, c.logger)
}

func (c *CompositionRoot) CreateSetInvoicedAtCommandHandler() commands.SetInvoicedAtCommandHandler {
	return commands.NewSetInvoicedAtCommandHandler(c.loadUoWFactory(), c.auditRecorder, c.logger)
}

func (c *CompositionRoot) CreateSetPaidAtCommandHandler() commands.SetPaidAtCommandHandler {
	return commands.NewSetPaidAtCommandHandler(c.loadUoWFactory(), c.auditRecorder, c.logger)
}

func (c *CompositionRoot) CreateClearPaidAtCommandHandler() commands.ClearPaidAtCommandHandler {
	return commands.NewClearPaidAtCommandHandler(c.loadUoWFactory(), c.auditRecorder, c.logger)
}

func (c *CompositionRoot) CreateGetLoadProgressQueryHandler() queries.GetLoadProgressQueryHandler {
	return queries.NewGetLoadProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadsByStatusQueryHandler() queries.GetLoadsByStatusQueryHandler {
	return queries.NewGetLoadsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateLoadCommandHandler(),
		c.CreateAdvanceLoadCommandHandler(),
		c.CreateRetreatLoadCommandHandler(),
		c.CreateSetInvoicedAtCommandHandler(),
		c.CreateSetPaidAtCommandHandler(),
		c.CreateClearPaidAtCommandHandler(),
		c.CreateGetLoadProgressQueryHandler(),
		c.CreateGetLoadsByStatusQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.auditRecorder, c.config.AuditFlushSchedule, c.logger)
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
