package routes

import (
	"github.com/go-chi/chi/v5"

	"aeromaint/opsdesk/internal/api"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, handlers *api.Handlers, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Public
		v1.Post("/auth/login", handlers.Login())

		// Everything below requires a live session
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Tokens, deps.Services.Session))

			authed.Post("/auth/logout", handlers.Logout())
			authed.Get("/auth/me", handlers.Me())

			// Shared read surfaces
			authed.Get("/missions", handlers.ListMissions())
			authed.Get("/missions/{ref}", handlers.GetMission())
			authed.Get("/drones", handlers.DroneBoard())
			authed.Get("/documents", handlers.ListDocuments())
			authed.Get("/documents/{id}/file", handlers.DownloadDocument())
			authed.Get("/certificates", handlers.ListCertificates())
			authed.Get("/certificates/{id}/file", handlers.DownloadCertificate())
			authed.Get("/maintenance", handlers.ListMaintenanceRecords())

			// Chief of Unit surfaces
			authed.Group(func(chief chi.Router) {
				chief.Use(middleware.IsChiefMiddleware())

				chief.Get("/dashboard/chief", handlers.ChiefDashboard())

				chief.Post("/missions", handlers.CreateMission())
				chief.Put("/missions/{ref}", handlers.UpdateMission())
				chief.Delete("/missions/{ref}", handlers.DeleteMission())

				chief.Get("/reports", handlers.ListReports())
				chief.Get("/reports/{id}", handlers.GetReport())
				chief.Get("/reports/{id}/attachments/{kind}", handlers.DownloadReportAttachment())
				chief.Post("/reports/{id}/review", handlers.ReviewReport())

				chief.Get("/problems", handlers.ListProblems())
				chief.Patch("/problems/{id}/status", handlers.UpdateProblemStatus())

				chief.Post("/parts", handlers.UpsertPart())
				chief.Get("/parts", handlers.ListParts())
				chief.Post("/parts/use", handlers.UsePart())
				chief.Get("/parts/low-stock", handlers.LowStockReport())
				chief.Get("/parts/usage", handlers.PartUsageHistory())
				chief.Delete("/parts/{part_id}", handlers.DeletePart())

				chief.Post("/certificates", handlers.CreateCertificate())
				chief.Post("/documents", handlers.UploadDocument())
				chief.Delete("/documents/{id}", handlers.DeleteDocument())

				chief.Post("/users", handlers.CreateUser())
				chief.Get("/users", handlers.ListUsers())
				chief.Put("/users/{id}", handlers.UpdateUser())
				chief.Delete("/users/{id}", handlers.DeleteUser())
			})

			// ATSEP surfaces
			authed.Group(func(atsep chi.Router) {
				atsep.Use(middleware.IsAtsepMiddleware())

				atsep.Get("/dashboard/atsep", handlers.AtsepDashboard())

				atsep.Get("/notifications", handlers.ListNotifications())
				atsep.Post("/notifications/{ref}/resolve", handlers.ResolveNotification())
				atsep.Patch("/missions/{ref}/status", handlers.UpdateMissionStatus())

				atsep.Post("/reports", handlers.SubmitReport())
				atsep.Get("/reports/mine", handlers.ListMyReports())

				atsep.Post("/maintenance", handlers.CreateMaintenanceRecord())
			})

			// Client surfaces
			authed.Group(func(client chi.Router) {
				client.Use(middleware.IsClientMiddleware())

				client.Post("/problems", handlers.CreateProblem())
				client.Get("/problems/mine", handlers.ListMyProblems())
			})
		})
	})
}
