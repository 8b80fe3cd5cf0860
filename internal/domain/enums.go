package domain

// Role identifies a caregiver's qualification tier.
type Role string

const (
	RoleInfirmier    Role = "infirmier"
	RoleASSC         Role = "assc"
	RoleAideSoignant Role = "aide-soignant"
)

// Weekday is a French weekday name as used in working_days lists.
type Weekday string

const (
	Lundi     Weekday = "lundi"
	Mardi     Weekday = "mardi"
	Mercredi  Weekday = "mercredi"
	Jeudi     Weekday = "jeudi"
	Vendredi  Weekday = "vendredi"
	Samedi    Weekday = "samedi"
	Dimanche  Weekday = "dimanche"
)

// weekdayOrder maps time.Weekday (Sunday=0) to the French day name.
var weekdayOrder = [7]Weekday{Dimanche, Lundi, Mardi, Mercredi, Jeudi, Vendredi, Samedi}

// DayType is the coverage class of a calendar day.
type DayType string

const (
	DayWeekday  DayType = "weekday"
	DaySaturday DayType = "saturday"
	DaySunday   DayType = "sunday"
)

// activityRates enumerates the only valid activity_rate values.
var activityRates = map[int]bool{20: true, 40: true, 60: true, 80: true, 100: true}

func validRole(r string) bool {
	switch Role(r) {
	case RoleInfirmier, RoleASSC, RoleAideSoignant:
		return true
	}
	return false
}

func validWeekday(d string) bool {
	switch Weekday(d) {
	case Lundi, Mardi, Mercredi, Jeudi, Vendredi, Samedi, Dimanche:
		return true
	}
	return false
}
