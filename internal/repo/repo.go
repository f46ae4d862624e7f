package repo

import (
	"github.com/bigshare/bigpoints/internal/pg"
	earningrepo "github.com/bigshare/bigpoints/internal/repo/earning-repo"
	userrepo "github.com/bigshare/bigpoints/internal/repo/user-repo"
	"github.com/bigshare/bigpoints/internal/service/authservice"
	"github.com/bigshare/bigpoints/internal/service/earningservice"
	"github.com/bigshare/bigpoints/internal/service/profileservice"
	"github.com/bigshare/bigpoints/internal/service/statservice"
)

// UserRepository is the union of the per-service views of the users table.
type UserRepository interface {
	authservice.Repo
	earningservice.UserRepo
	profileservice.UserRepo
	statservice.UserRepo
}

// EarningRepository is the union of the per-service views of the daily
// earnings table.
type EarningRepository interface {
	earningservice.Repo
	statservice.EarningRepo
}

type Repositories struct {
	UserRepo    UserRepository
	EarningRepo EarningRepository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	earningRepo := earningrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:    userRepo,
		EarningRepo: earningRepo,
	}
}
