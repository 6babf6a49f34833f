package constants

// Session and context keys
const (
	SessionCookieName = "kitchen_session"
	ContextKeyUserID  = "user_id"
)

// Phone limits for the user directory
const (
	MaxPhonesPerUser = 3
)

// Menu item limits per meal
const (
	MinMenuItems = 3
	MaxMenuItems = 4
)
