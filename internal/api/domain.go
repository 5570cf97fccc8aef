package api

import (
	"rukun/internal/citizens"
	"rukun/internal/dashboard"
	"rukun/internal/families"
	"rukun/internal/letters"
	"rukun/internal/treasury"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Citizens  citizens.System
	Families  families.System
	Treasury  treasury.System
	Letters   letters.System
	Dashboard dashboard.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	citizensSystem := citizens.New(
		runtime.Database.Connection(),
		runtime.Gateway,
		runtime.Logger,
		runtime.Pagination,
	)

	familiesSystem := families.New(
		runtime.Database.Connection(),
		citizensSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	treasurySystem := treasury.New(
		runtime.Database.Connection(),
		runtime.Gateway,
		runtime.Logger,
		runtime.Pagination,
	)

	lettersSystem := letters.New(
		runtime.Database.Connection(),
		runtime.Gateway,
		citizensSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	dashboardSystem := dashboard.New(
		runtime.Database.Connection(),
		runtime.Gateway,
		treasurySystem,
		runtime.Logger,
	)

	return &Domain{
		Citizens:  citizensSystem,
		Families:  familiesSystem,
		Treasury:  treasurySystem,
		Letters:   lettersSystem,
		Dashboard: dashboardSystem,
	}
}
