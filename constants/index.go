package constants

// Roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_PLANNER = "PLANNER"
	ROLE_COUPLE  = "COUPLE"
)

// Shared messages
const (
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE         = "Account has been deactivated"
	NOT_ADMIN                  = "You do not have permission for this action"
	NOT_EVENT_MEMBER           = "You do not have access to this event"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read validated input"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	TABLE_FULL                 = "Table is already at full capacity"
	ROOM_FULL                  = "Room is already at full capacity"
)

// RSVP status values
const (
	RSVP_PENDING  = "pending"
	RSVP_ACCEPTED = "accepted"
	RSVP_DECLINED = "declined"
)

// Floor plan geometry. The editor canvas is a fixed 1200x600 surface and
// every drag is clamped server-side to canvas minus element size and padding.
const (
	CANVAS_WIDTH   = 1200
	CANVAS_HEIGHT  = 600
	CANVAS_PADDING = 32
	TABLE_SIZE     = 96
	SEAT_SIZE      = 28
	SEAT_RADIUS    = 70.0
	ROTATION_STEP  = 15
	MAX_SEATS      = 20
)
