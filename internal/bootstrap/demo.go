package bootstrap

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gastrogrid/internal/extras"
	"gastrogrid/internal/models"
)

// SeedDemo inserts one demo event with a pair of jobs into an empty
// store so a fresh install has something to show. Idempotent: any
// existing event skips the seed.
func SeedDemo(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	setup := now.Add(24 * time.Hour)
	start := setup.Add(2 * time.Hour)
	end := start.Add(6 * time.Hour)

	eventDoc := extras.NewEventExtras()
	extras.AddStep(&eventDoc.Checklist, "Anlieferung prüfen")
	extras.AddStep(&eventDoc.Checklist, "Stationen aufbauen")
	eventRaw, err := extras.EncodeEventExtras(eventDoc)
	if err != nil {
		return err
	}

	jobDoc := extras.NewJobExtras()
	jobDoc.OrderNumber = "9779-04"
	jobDoc.Station = "Torhaus E2"
	jobDoc.Persons = 120
	jobDoc.LineItems = append(jobDoc.LineItems, extras.NewLineItem("Spätzle", "12", "GN 1/1", "6,5 cm hoch"))
	extras.ApplyTemplate(&jobDoc.Checklist, extras.Templates()[1].Steps, extras.ModeReplace)
	jobRaw, err := extras.EncodeJobExtras(jobDoc)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		event := models.Event{
			Title:          "Demo: Kantinentag",
			EventNumber:    "DEMO-001",
			Location:       "Produktionsküche",
			Notes:          "Automatisch angelegter Demo-Datensatz.",
			SetupTime:      &setup,
			EventStartTime: &start,
			EventEndTime:   &end,
			Extras:         eventRaw,
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		jobs := []models.Auftrag{
			{
				EventID:           event.ID,
				StatusRaw:         string(models.StatusPending),
				EmployeeName:      "Alex",
				ProcessingDetails: "Spätzle für Kantine vorbereiten",
				StorageLocation:   "Bereitstelle",
				StorageNote:       "1/1 Silber",
				Extras:            jobRaw,
			},
			{
				EventID:             event.ID,
				StatusRaw:           string(models.StatusPending),
				EmployeeName:        "Sam",
				ProcessingDetails:   "Buffet Frankfurter aufbauen",
				StorageLocation:     "TK OG",
				StorageNote:         "1/2 Schwarz",
				DeliveryTemperature: true,
			},
		}
		if err := tx.Create(&jobs).Error; err != nil {
			return err
		}

		logger.Info("demo data seeded", zap.Uint("event_id", event.ID), zap.Int("jobs", len(jobs)))
		return nil
	})
}
