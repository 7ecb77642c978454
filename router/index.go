package router

import (
	"wedding_planner/handler"
	"wedding_planner/middleware"
	"wedding_planner/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/couple-login", handler.CoupleLogin)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.ActiveAccount(), handler.ActiveAccount)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.Protected(), handler.GetEvents)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Get("/:eventId", middleware.Protected(), validate.EventAccess("eventId"), handler.GetEventById)
	event.Put("/:eventId", middleware.Protected(), validate.EventAccess("eventId"), validate.EditEvent(), handler.EditEvent)
	event.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteEvent)
	event.Put("/:eventId/couple-credentials", middleware.Protected(), validate.EventAccess("eventId"), validate.SetCoupleCredentials(), handler.SetCoupleCredentials)

	// Event-scoped resources. Every route resolves the event first.
	guest := v1.Group("/event/:eventId/guest", middleware.Protected(), validate.EventAccess("eventId"))
	guest.Get("/", validate.FilterGuests(), handler.GetGuests)
	guest.Post("/", validate.CreateGuest(), handler.CreateGuest)
	guest.Get("/:guestId", validate.GuestInEvent("guestId"), handler.GetGuestById)
	guest.Put("/:guestId", validate.GuestInEvent("guestId"), validate.EditGuest(), handler.EditGuest)
	guest.Delete("/", validate.Delete(), handler.DeleteGuest)
	guest.Post("/:guestId/unassign", validate.GuestInEvent("guestId"), handler.UnassignGuest)

	floorplan := v1.Group("/event/:eventId/floorplan", middleware.Protected(), validate.EventAccess("eventId"))
	floorplan.Get("/", handler.GetFloorPlans)
	floorplan.Post("/", validate.CreateFloorPlan(), handler.CreateFloorPlan)

	plan := v1.Group("/floorplan/:floorPlanId", middleware.Protected(), validate.FloorPlanAccess("floorPlanId"))
	plan.Get("/", handler.GetFloorPlanById)
	plan.Put("/", validate.EditFloorPlan(), handler.EditFloorPlan)
	plan.Delete("/", handler.DeleteFloorPlan)
	plan.Post("/table", validate.CreateTable(), handler.CreateTable)
	plan.Post("/seat", validate.CreateSeat(), handler.CreateSeat)

	table := v1.Group("/table", logger.New())
	table.Put("/:tableId", middleware.Protected(), validate.GetById("tableId"), validate.EditTable(), handler.EditTable)
	table.Delete("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.DeleteTable)
	table.Patch("/:tableId/move", middleware.Protected(), validate.GetById("tableId"), validate.Move(), handler.MoveTable)
	table.Patch("/:tableId/rotate", middleware.Protected(), validate.GetById("tableId"), handler.RotateTable)
	table.Post("/:tableId/assign", middleware.Protected(), validate.GetById("tableId"), validate.AssignTable(), handler.AssignGuestToTable)

	seat := v1.Group("/seat", logger.New())
	seat.Patch("/:seatId/move", middleware.Protected(), validate.GetById("seatId"), validate.Move(), handler.MoveSeat)
	seat.Put("/:seatId/assign", middleware.Protected(), validate.GetById("seatId"), validate.AssignSeat(), handler.AssignSeat)
	seat.Delete("/:seatId", middleware.Protected(), validate.GetById("seatId"), handler.DeleteSeat)

	checklist := v1.Group("/event/:eventId/checklist", middleware.Protected(), validate.EventAccess("eventId"))
	checklist.Get("/", handler.GetChecklist)
	checklist.Post("/", validate.CreateChecklistItem(), handler.CreateChecklistItem)
	checklist.Put("/:itemId", validate.ChecklistItemInEvent("itemId"), validate.EditChecklistItem(), handler.EditChecklistItem)
	checklist.Delete("/:itemId", validate.ChecklistItemInEvent("itemId"), handler.DeleteChecklistItem)

	timeline := v1.Group("/event/:eventId/timeline", middleware.Protected(), validate.EventAccess("eventId"))
	timeline.Get("/", handler.GetTimeline)
	timeline.Post("/day", validate.CreateTimelineDay(), handler.CreateTimelineDay)
	timeline.Put("/day/:dayId", validate.TimelineDayInEvent("dayId"), validate.EditTimelineDay(), handler.EditTimelineDay)
	timeline.Delete("/day/:dayId", validate.TimelineDayInEvent("dayId"), handler.DeleteTimelineDay)
	timeline.Post("/day/:dayId/event", validate.TimelineDayInEvent("dayId"), validate.CreateTimelineEvent(), handler.CreateTimelineEvent)
	timeline.Put("/item/:timelineEventId", validate.TimelineEventInEvent("timelineEventId"), validate.EditTimelineEvent(), handler.EditTimelineEvent)
	timeline.Delete("/item/:timelineEventId", validate.TimelineEventInEvent("timelineEventId"), handler.DeleteTimelineEvent)

	vendor := v1.Group("/event/:eventId/vendor", middleware.Protected(), validate.EventAccess("eventId"))
	vendor.Get("/", handler.GetVendors)
	vendor.Post("/", validate.CreateVendor(), handler.CreateVendor)
	vendor.Put("/:vendorId", validate.VendorInEvent("vendorId"), validate.EditVendor(), handler.EditVendor)
	vendor.Delete("/:vendorId", validate.VendorInEvent("vendorId"), handler.DeleteVendor)

	budget := v1.Group("/event/:eventId/budget", middleware.Protected(), validate.EventAccess("eventId"))
	budget.Get("/", handler.GetBudgetItems)
	budget.Get("/totals", handler.GetBudgetTotals)
	budget.Post("/", validate.CreateBudgetItem(), handler.CreateBudgetItem)
	budget.Put("/:itemId", validate.BudgetItemInEvent("itemId"), validate.EditBudgetItem(), handler.EditBudgetItem)
	budget.Delete("/:itemId", validate.BudgetItemInEvent("itemId"), handler.DeleteBudgetItem)

	accommodation := v1.Group("/event/:eventId/accommodation", middleware.Protected(), validate.EventAccess("eventId"))
	accommodation.Get("/", handler.GetAccommodations)
	accommodation.Post("/", validate.CreateAccommodation(), handler.CreateAccommodation)
	accommodation.Put("/:accommodationId", validate.AccommodationInEvent("accommodationId"), validate.EditAccommodation(), handler.EditAccommodation)
	accommodation.Delete("/:accommodationId", validate.AccommodationInEvent("accommodationId"), handler.DeleteAccommodation)
	accommodation.Post("/:accommodationId/room", validate.AccommodationInEvent("accommodationId"), validate.CreateRoom(), handler.CreateRoom)

	room := v1.Group("/room", logger.New())
	room.Delete("/:roomId", middleware.Protected(), validate.GetById("roomId"), handler.DeleteRoom)
	room.Post("/:roomId/allocate", middleware.Protected(), validate.GetById("roomId"), validate.AllocateRoom(), handler.AllocateRoom)
	room.Delete("/allocation/:allocationId", middleware.Protected(), validate.GetById("allocationId"), handler.DeallocateRoom)

	menu := v1.Group("/event/:eventId/menu", middleware.Protected(), validate.EventAccess("eventId"))
	menu.Get("/", handler.GetMenu)
	menu.Post("/", validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:itemId", validate.MenuItemInEvent("itemId"), validate.EditMenuItem(), handler.EditMenuItem)
	menu.Delete("/:itemId", validate.MenuItemInEvent("itemId"), handler.DeleteMenuItem)

	drink := v1.Group("/event/:eventId/drink", middleware.Protected(), validate.EventAccess("eventId"))
	drink.Get("/", handler.GetDrinks)
	drink.Post("/", validate.CreateDrink(), handler.CreateDrink)
	drink.Put("/:drinkId", validate.DrinkInEvent("drinkId"), validate.EditDrink(), handler.EditDrink)
	drink.Delete("/:drinkId", validate.DrinkInEvent("drinkId"), handler.DeleteDrink)

	website := v1.Group("/event/:eventId/website", middleware.Protected(), validate.EventAccess("eventId"))
	website.Get("/", handler.GetWebsite)
	website.Put("/", validate.UpsertWebsite(), handler.UpsertWebsite)
	website.Patch("/publish", handler.PublishWebsite)
	website.Patch("/unpublish", handler.UnpublishWebsite)
	website.Get("/qr", handler.WebsiteQRCode)

	export := v1.Group("/event/:eventId/export", middleware.Protected(), validate.EventAccess("eventId"))
	export.Get("/guests.csv", handler.ExportGuestsCSV)
	export.Get("/summary", handler.ExportEventSummary)

	// Couple portal, scoped to the event on the token.
	couple := v1.Group("/couple", middleware.CoupleProtected())
	couple.Get("/event", handler.CoupleGetEvent)
	couple.Get("/guests", handler.CoupleGetGuests)
	couple.Get("/seating", handler.CoupleGetSeating)
	couple.Get("/checklist", handler.CoupleGetChecklist)
	couple.Get("/timeline", handler.CoupleGetTimeline)
	couple.Get("/budget", handler.CoupleGetBudget)
	couple.Get("/website", handler.CoupleGetWebsite)
	couple.Put("/website", validate.UpsertWebsite(), handler.CoupleUpsertWebsite)

	// Public. OptionalJWT attaches the caller's identity when a token is
	// present without turning guests away.
	v1.Get("/rsvp/:inviteCode", middleware.OptionalJWT(), handler.GetRsvpInvite)
	v1.Post("/rsvp/:inviteCode", middleware.OptionalJWT(), validate.SubmitRsvp(), handler.SubmitRsvp)
	v1.Get("/w/:slug", middleware.OptionalJWT(), handler.PublicWebsite)

	v1.Get("/ws/floorplan/:floorPlanId", middleware.Protected(), validate.FloorPlanAccess("floorPlanId"), websocket.New(handler.FloorPlanWebsocket))
}
