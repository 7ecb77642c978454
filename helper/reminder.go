package helper

import (
	"log"
	"time"

	"wedding_planner/database"
	"wedding_planner/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartChecklistScheduler flags overdue checklist items once an hour.
func StartChecklistScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("0 * * * *", flagOverdueChecklistItems)
	if err != nil {
		log.Printf("failed to start checklist scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("checklist scheduler started (hourly)")
}

func flagOverdueChecklistItems() {
	now := time.Now()
	result := database.DB.Model(&model.ChecklistItem{}).
		Where("done = ? AND overdue = ? AND due_date IS NOT NULL AND due_date < ?", false, false, now).
		Update("overdue", true)

	if result.Error != nil {
		log.Printf("failed to flag overdue checklist items: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("flagged %d checklist items as overdue", result.RowsAffected)
	}
}

func StopChecklistScheduler() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("checklist scheduler stopped")
	}
}
