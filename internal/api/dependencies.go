package api

import (
	"context"
	"fmt"
	"time"

	"aeromaint/opsdesk/internal/auth"
	"aeromaint/opsdesk/internal/blob"
	"aeromaint/opsdesk/internal/common"
	"aeromaint/opsdesk/internal/config"
	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/db/repositories"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/services"
)

type Repositories struct {
	Missions      *repositories.MissionRepository
	Notifications *repositories.NotificationRepository
	Reports       *repositories.ReportRepository
	Problems      *repositories.ProblemRepository
	Inventory     *repositories.InventoryRepository
	Maintenance   *repositories.MaintenanceRepository
	Certificates  *repositories.CertificateRepository
	Documents     *repositories.DocumentRepository
	Users         *repositories.UserRepository
}

type Services struct {
	Cache       common.CacheInterface
	Session     *common.SessionService
	Tokens      *auth.TokenService
	Auth        *services.AuthService
	Mission     *services.MissionService
	Report      *services.ReportService
	Problem     *services.ProblemService
	Inventory   *services.InventoryService
	Maintenance *services.MaintenanceService
	Certificate *services.CertificateService
	Document    *services.DocumentService
	User        *services.UserService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Files    blob.Store
}

// InitDependencies wires repositories, the cache/blob backends selected by
// configuration, and the domain services.
func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Missions:      repositories.NewMissionRepository(db.DB),
		Notifications: repositories.NewNotificationRepository(db.DB),
		Reports:       repositories.NewReportRepository(db.DB),
		Problems:      repositories.NewProblemRepository(db.DB),
		Inventory:     repositories.NewInventoryRepository(db.DB),
		Maintenance:   repositories.NewMaintenanceRepository(db.DB),
		Certificates:  repositories.NewCertificateRepository(db.DB),
		Documents:     repositories.NewDocumentRepository(db.DB),
		Users:         repositories.NewUserRepository(db.DB),
	}

	var cacheSvc common.CacheInterface
	switch cfg.Cache.Backend {
	case "redis":
		redisSvc, err := common.NewRedisCacheService(
			fmt.Sprintf("%s:%s", cfg.Cache.RedisHost, cfg.Cache.RedisPort),
			cfg.Cache.RedisPassword,
			0,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis cache: %w", err)
		}
		cacheSvc = redisSvc
	default:
		cacheSvc = common.NewCacheService(600, 60)
	}

	files, err := blob.Open(context.Background(), cfg.Blob)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessionSvc := common.NewSessionService(cacheSvc, sessionTTL)
	tokenSvc := auth.NewTokenService([]byte(cfg.Session.Secret))

	svcs := &Services{
		Cache:       cacheSvc,
		Session:     sessionSvc,
		Tokens:      tokenSvc,
		Auth:        services.NewAuthService(repos.Users, sessionSvc, tokenSvc, metricsReg, sessionTTL),
		Mission:     services.NewMissionService(repos.Missions, repos.Notifications, repos.Reports, repos.Problems, metricsReg),
		Report:      services.NewReportService(repos.Reports, repos.Missions, files, metricsReg),
		Problem:     services.NewProblemService(repos.Problems, metricsReg),
		Inventory:   services.NewInventoryService(repos.Inventory, metricsReg),
		Maintenance: services.NewMaintenanceService(repos.Maintenance),
		Certificate: services.NewCertificateService(repos.Certificates, files),
		Document:    services.NewDocumentService(repos.Documents, files),
		User:        services.NewUserService(repos.Users),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		Files:    files,
	}, nil
}
