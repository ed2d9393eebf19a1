package domain

// UserRole represents the authorization level of a profile.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// SessionEventKind is the kind of change the session store reports.
type SessionEventKind string

const (
	SessionSignedIn       SessionEventKind = "SIGNED_IN"
	SessionTokenRefreshed SessionEventKind = "TOKEN_REFRESHED"
	SessionSignedOut      SessionEventKind = "SIGNED_OUT"
)

func (k SessionEventKind) String() string { return string(k) }

func (k SessionEventKind) IsValid() bool {
	switch k {
	case SessionSignedIn, SessionTokenRefreshed, SessionSignedOut:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a room booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string { return string(s) }

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// NotificationType is the closed set of notifications backend triggers create.
type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingReminder  NotificationType = "booking_reminder"
	NotificationRewardRedeemed   NotificationType = "reward_redeemed"
	NotificationLevelUp          NotificationType = "level_up"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationBookingConfirmed, NotificationBookingCancelled, NotificationBookingReminder,
		NotificationRewardRedeemed, NotificationLevelUp:
		return true
	}
	return false
}

// ContentAudience selects which rows row-level security exposes for content reads.
type ContentAudience string

const (
	AudienceMember ContentAudience = "member"
	AudienceAdmin  ContentAudience = "admin"
)

// AudienceFor returns the audience for the given role.
func AudienceFor(role UserRole) ContentAudience {
	if role.IsAdmin() {
		return AudienceAdmin
	}
	return AudienceMember
}
