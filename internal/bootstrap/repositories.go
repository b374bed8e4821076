package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoffeeGarden_Go/internal/database/postgres"
	"github.com/osse101/CoffeeGarden_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User    repository.User
	Garden  repository.Garden
	Checkin repository.Checkin
}

// InitializeRepositories creates the postgres-backed repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    postgres.NewUserRepository(dbPool),
		Garden:  postgres.NewGardenRepository(dbPool),
		Checkin: postgres.NewCheckinRepository(dbPool),
	}
}
