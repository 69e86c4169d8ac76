package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDXB_SVC_"
)

const (
	MedxbayRolePatient = "patient"
	MedxbayRoleDoctor  = "doctor"
	MedxbayRoleAdmin   = "admin"
)

const (
	BookingStatusWaiting   = "waiting"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

const (
	TimeSlotStatusFree   = "free"
	TimeSlotStatusBooked = "booked"
)

const (
	ConsultationTypeVideo    = "video"
	ConsultationTypeInPerson = "in-person"
)

const (
	SubscriptionTierFree     = "free"
	SubscriptionTierStandard = "standard"
	SubscriptionTierPremium  = "premium"
)

const (
	SubscriptionStatusPending = "pending"
	SubscriptionStatusActive  = "active"
	SubscriptionStatusExpired = "expired"
)

const (
	BlogVerificationPending  = "pending"
	BlogVerificationVerified = "verified"
	BlogVerificationRejected = "rejected"
)

const (
	ChatSenderTypePatient = "patient"
	ChatSenderTypeDoctor  = "doctor"
	ChatSenderTypeSystem  = "system"
)

const (
	NotificationTypeBooking      = "booking"
	NotificationTypeVerification = "verification"
	NotificationTypePrescription = "prescription"
	NotificationTypeSubscription = "subscription"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 10
	AppMaxPageSize         = 100
)

const (
	RedisSessionKeyPrefix    = "session:"
	RedisDoctorLockKeyFormat = "lock:doctor:%s"
	RedisWorkerLeaderLockKey = "worker:leader"
)
