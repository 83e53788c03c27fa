package constants

import "time"

// Session and context keys
const (
	SessionCookieName = "eatyq_session"
	ContextKeyUserID  = "user_id"
	ContextKeyMenu    = "menu"
	ContextKeyCategory = "category"
)

// Validation limits
const (
	MinPasswordLength = 8
)

// StoreTimeout bounds a single document-store round trip.
const StoreTimeout = 10 * time.Second

// DefaultCurrency is applied to items created without an explicit currency.
const DefaultCurrency = "$"

// ImageFolder is the Cloudinary folder item images are uploaded into.
const ImageFolder = "menu_items"
