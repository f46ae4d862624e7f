package service

import (
	"github.com/bigshare/bigpoints/internal/handlers/admin"
	"github.com/bigshare/bigpoints/internal/handlers/auth"
	"github.com/bigshare/bigpoints/internal/handlers/earnings"
	"github.com/bigshare/bigpoints/internal/handlers/profile"

	pkgauth "github.com/bigshare/bigpoints/pkg/auth"

	"github.com/bigshare/bigpoints/internal/repo"
	authservice "github.com/bigshare/bigpoints/internal/service/authservice"
	earningservice "github.com/bigshare/bigpoints/internal/service/earningservice"
	profileservice "github.com/bigshare/bigpoints/internal/service/profileservice"
	statservice "github.com/bigshare/bigpoints/internal/service/statservice"
)

type Services struct {
	AuthService    auth.Service
	EarningService earnings.Service
	ProfileService profile.Service
	StatService    admin.Service
}

func New(repo *repo.Repositories, statWorkers int) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	earningService := earningservice.New(repo.EarningRepo, repo.UserRepo)
	profileService := profileservice.New(repo.UserRepo)
	statService := statservice.New(repo.UserRepo, repo.EarningRepo, statWorkers)

	return &Services{
		AuthService:    authService,
		EarningService: earningService,
		ProfileService: profileService,
		StatService:    statService,
	}
}
