package models

type UserRole string
type Availability string
type ReportReason string

const (
	UserRoleClient  UserRole = "client"
	UserRoleArtisan UserRole = "artisan"
	UserRoleAdmin   UserRole = "admin"

	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"

	ReportReasonSpam          ReportReason = "spam"
	ReportReasonInappropriate ReportReason = "inappropriate"
	ReportReasonFake          ReportReason = "fake"
	ReportReasonPersonal      ReportReason = "personal"
	ReportReasonOther         ReportReason = "other"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleClient, UserRoleArtisan, UserRoleAdmin:
		return true
	}
	return false
}

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

func (r ReportReason) Valid() bool {
	switch r {
	case ReportReasonSpam, ReportReasonInappropriate, ReportReasonFake,
		ReportReasonPersonal, ReportReasonOther:
		return true
	}
	return false
}
