package cmd

import (
	"foodbridge/internal/adapters/out/postgres"
	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/pkg/clock"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into the application's command and
// query handlers. It is the only place that knows the concrete adapters.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.System(),
	}
}

func (c *CompositionRoot) CreateCreateDonationCommandHandler() commands.CreateDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDonationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAcceptDonationCommandHandler() commands.AcceptDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDonationCommandHandler(f, c.clock, c.config.ExpiryWindow, c.config.CourierCapacity)
}

func (c *CompositionRoot) CreateCollectDonationCommandHandler() commands.CollectDonationCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectDonationCommandHandler(f, c.clock, c.config.ExpiryWindow)
}

func (c *CompositionRoot) CreateDeliverDonationsCommandHandler() commands.DeliverDonationsCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverDonationsCommandHandler(f, c.clock, c.config.ExpiryWindow)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.VerificationUoWFactory = FuncVerificationUoWFactory(func() commands.VerificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRateDonationCommandHandler() commands.RateDonationCommandHandler {
	var f commands.VerificationUoWFactory = FuncVerificationUoWFactory(func() commands.VerificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateDonationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCourierCommandHandler() commands.RegisterCourierCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteCampCommandHandler() commands.CompleteCampCommandHandler {
	var f commands.CampUoWFactory = FuncCampUoWFactory(func() commands.CampUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteCampCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReleaseExpiredPickupsCommandHandler() commands.ReleaseExpiredPickupsCommandHandler {
	var f commands.DonationUoWFactory = FuncDonationUoWFactory(func() commands.DonationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseExpiredPickupsCommandHandler(f, c.clock, c.config.ExpiryWindow)
}

func (c *CompositionRoot) CreateGetAvailableDonationsQueryHandler() queries.GetAvailableDonationsQueryHandler {
	return queries.NewGetAvailableDonationsQueryHandler(c.gormDB, c.clock, c.config.ExpiryWindow)
}

func (c *CompositionRoot) CreateGetCourierPickupsQueryHandler() queries.GetCourierPickupsQueryHandler {
	return queries.NewGetCourierPickupsQueryHandler(c.gormDB, c.clock, c.config.ExpiryWindow)
}

func (c *CompositionRoot) CreateGetDonationsToVerifyQueryHandler() queries.GetDonationsToVerifyQueryHandler {
	return queries.NewGetDonationsToVerifyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLeaderboardQueryHandler() queries.GetLeaderboardQueryHandler {
	return queries.NewGetLeaderboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearestCampQueryHandler() queries.GetNearestCampQueryHandler {
	// Read-only lookups run outside a transaction, directly on the main
	// connection.
	uow := c.uowFactory.Create()
	return queries.NewGetNearestCampQueryHandler(
		uow.CourierRepository(), uow.CampRepository(), services.NewCampResolver())
}

type FuncDonationUoWFactory func() commands.DonationUoW

func (f FuncDonationUoWFactory) Create() commands.DonationUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncVerificationUoWFactory func() commands.VerificationUoW

func (f FuncVerificationUoWFactory) Create() commands.VerificationUoW {
	return f()
}

type FuncCampUoWFactory func() commands.CampUoW

func (f FuncCampUoWFactory) Create() commands.CampUoW {
	return f()
}
