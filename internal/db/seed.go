package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aeromaint/opsdesk/internal/constants"
	"aeromaint/opsdesk/internal/models/entities"
)

// Seed loads the demo accounts and sample rows the portal ships with. Safe to
// call once per process; the store starts empty on every boot.
func Seed(db *gorm.DB) error {
	accounts := []entities.Account{
		{ID: uuid.NewString(), Username: "chief", Password: "chief123", Role: constants.RoleChief, Avatar: "https://i.imgur.com/1Q9Z1Zm.png"},
		{ID: uuid.NewString(), Username: "houcine", Password: "atsep123", Role: constants.RoleAtsep, Avatar: "https://i.imgur.com/2z6b7Yk.png"},
		{ID: uuid.NewString(), Username: "airport1", Password: "client123", Role: constants.RoleClient, Avatar: "https://i.imgur.com/3y6b7Yk.png"},
	}
	if err := db.Create(&accounts).Error; err != nil {
		return err
	}

	missions := []entities.Mission{
		{
			ID: uuid.NewString(), Reference: "M001", Airport: "JFK",
			DateStart: "2025-05-01", DateFinish: "2025-05-03", Duration: "2d",
			Problem: "Radar issue", Status: constants.MissionStatusEnCours,
			Assignment: constants.MissionAssignmentNew,
			GroupChief: "houcine", Pilot: "ahmed", DataAnalyst: "sara",
		},
		{
			ID: uuid.NewString(), Reference: "M002", Airport: "LAX",
			DateStart: "2025-04-20", DateFinish: "2025-04-22", Duration: "2d",
			Problem: "Comms check", Status: constants.MissionStatusDone,
			Assignment: constants.MissionAssignmentAccepted,
			GroupChief: "hassan", Pilot: "jamal", DataAnalyst: "salma",
		},
	}
	if err := db.Create(&missions).Error; err != nil {
		return err
	}

	parts := []entities.SparePart{
		{ID: uuid.NewString(), PartID: "P001", Name: "Propeller", Description: "Main propeller", Quantity: 10, Minimum: 5},
		{ID: uuid.NewString(), PartID: "P002", Name: "Battery", Description: "LiPo battery", Quantity: 3, Minimum: 5},
	}
	if err := db.Create(&parts).Error; err != nil {
		return err
	}

	records := []entities.MaintenanceRecord{
		{ID: uuid.NewString(), Equipment: "D001", Date: "2025-05-10", Type: "Calibration", Description: "Annual calibration", Technician: "houcine"},
		{ID: uuid.NewString(), Equipment: "D002", Date: "2025-04-15", Type: "Repair", Description: "Motor replaced", Technician: "houcine", PartsChange: "Motor"},
	}
	if err := db.Create(&records).Error; err != nil {
		return err
	}

	users := []entities.User{
		{ID: uuid.NewString(), Name: "houcine fath", Role: "Group Chief", Email: "houcine@example.com", Status: "Active", Username: "houcine", Password: "chief123"},
		{ID: uuid.NewString(), Name: "jamal Jon", Role: "Pilot", Email: "jam@example.com", Status: "Active", Username: "jamal", Password: "pilot123"},
		{ID: uuid.NewString(), Name: "sara walo", Role: "Data Analyst", Email: "sara@example.com", Status: "Inactive", Username: "sara", Password: "analyst123"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	return nil
}
