package api

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(database *gorm.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "SQLite Connected"
		if err := db.Ping(database); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["sqlite"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
