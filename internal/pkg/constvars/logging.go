package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingBookingIDKey      = "booking_id"
	LoggingBlogIDKey         = "blog_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingQueueKey          = "queue"
	LoggingEmailToKey        = "email_to"
	LoggingSlotDateKey       = "slot_date"
	LoggingSlotStartKey      = "slot_start"
	LoggingCountKey          = "count"
	LoggingStatusKey         = "status"
	LoggingPlanKey           = "plan"
)
