package domain

import "time"

// Location categories.
const (
	LocationTypePark     = "park"
	LocationTypeSauna    = "sauna"
	LocationTypeMall     = "mall"
	LocationTypeRestroom = "restroom"
	LocationTypeBeach    = "beach"
	LocationTypeBar      = "bar"
	LocationTypeClub     = "club"
	LocationTypeOther    = "other"
)

// LocationTypes lists the accepted location categories.
var LocationTypes = []string{
	LocationTypePark, LocationTypeSauna, LocationTypeMall, LocationTypeRestroom,
	LocationTypeBeach, LocationTypeBar, LocationTypeClub, LocationTypeOther,
}

// Safety alert types.
const (
	AlertTypePolice     = "police"
	AlertTypeRobbery    = "robbery"
	AlertTypeHomophobia = "homophobia"
	AlertTypeHarassment = "harassment"
	AlertTypeOther      = "other"
)

// AlertTypes lists the accepted alert types.
var AlertTypes = []string{
	AlertTypePolice, AlertTypeRobbery, AlertTypeHomophobia,
	AlertTypeHarassment, AlertTypeOther,
}

// ValidAlertType reports whether t is an accepted alert type.
func ValidAlertType(t string) bool {
	for _, v := range AlertTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidLocationType reports whether t is an accepted location category.
func ValidLocationType(t string) bool {
	for _, v := range LocationTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Activity horizons. A check-in counts as present for 4 hours; alerts are
// queried over a 24h window by default and swept inactive after 7 days.
const (
	CheckInHorizon = 4 * time.Hour
	AlertHorizon   = 24 * time.Hour
	AlertRetention = 7 * 24 * time.Hour
)

// Default query radii in km. Caller policy, not part of the proximity
// function contract.
const (
	DefaultLocationRadiusKm = 10.0
	DefaultAlertRadiusKm    = 5.0
)

// Lighting conditions recorded per location.
const (
	LightingWellLit = "well_lit"
	LightingDim     = "dim"
	LightingDark    = "dark"
)

// Report workflow states.
const (
	ReportStatusPending  = "PENDING"
	ReportStatusReviewed = "REVIEWED"
	ReportStatusResolved = "RESOLVED"
)

// Limits on free-text fields.
const (
	MaxCommentLen          = 500
	MaxAlertDescriptionLen = 500
)
