package validate

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"wedding_planner/database"
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupValidateDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Event{},
		&model.Guest{},
		&model.TimelineDay{},
		&model.TimelineEvent{},
	))
	database.DB = db
}

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestGuestInEventChecksMembership(t *testing.T) {
	setupValidateDB(t)

	eventA := model.Event{Name: "Wedding A"}
	require.NoError(t, database.DB.Create(&eventA).Error)
	eventB := model.Event{Name: "Wedding B"}
	require.NoError(t, database.DB.Create(&eventB).Error)

	guest := model.Guest{EventId: eventB.ID, FirstName: "Alice", InviteCode: "code-1"}
	require.NoError(t, database.DB.Create(&guest).Error)

	app := fiber.New()
	app.Get("/event/:eventId/guest/:guestId", EventAccess("eventId"), GuestInEvent("guestId"), okHandler)

	// A guest of another event is refused.
	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/guest/%d", eventA.ID, guest.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/guest/%d", eventB.ID, guest.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/guest/9999", eventB.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/guest/nope", eventB.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTimelineEventInEventChecksMembership(t *testing.T) {
	setupValidateDB(t)

	eventA := model.Event{Name: "Wedding A"}
	require.NoError(t, database.DB.Create(&eventA).Error)
	eventB := model.Event{Name: "Wedding B"}
	require.NoError(t, database.DB.Create(&eventB).Error)

	day := model.TimelineDay{EventId: eventB.ID, Date: time.Now(), Title: "The Big Day"}
	require.NoError(t, database.DB.Create(&day).Error)
	entry := model.TimelineEvent{TimelineDayId: day.ID, StartTime: "14:00", Title: "Ceremony"}
	require.NoError(t, database.DB.Create(&entry).Error)

	app := fiber.New()
	app.Get("/event/:eventId/timeline/item/:timelineEventId", EventAccess("eventId"), TimelineEventInEvent("timelineEventId"), okHandler)

	// Membership is resolved through the parent day.
	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/timeline/item/%d", eventA.ID, entry.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/timeline/item/%d", eventB.ID, entry.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/event/%d/timeline/item/9999", eventB.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
