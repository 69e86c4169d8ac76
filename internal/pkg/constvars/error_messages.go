package constvars

// Client-facing messages. Keep these generic; dev messages carry the detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientUsernameAlreadyExists         = "Username is already taken"
	ErrClientInvalidImageFormat            = "Invalid image, please upload a valid picture"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientBookingNotFound               = "Booking not found"
	ErrClientChatNotFound                  = "Chat not found"
	ErrClientBlogNotFound                  = "Blog post not found"
	ErrClientPrescriptionNotFound          = "Prescription not found"
	ErrClientSlotNotAvailable              = "The requested time slot is not available"
	ErrClientSlotCurrentlyBooked           = "The time slot is currently booked and cannot be removed"
	ErrClientInvalidBookingTransition      = "The booking cannot be moved to the requested status"
	ErrClientBookingNotFinishedYet         = "The appointment has not finished yet"
	ErrClientBookingBusy                   = "Another booking operation is in progress, please retry"
	ErrClientSubscriptionPlanUnknown       = "Unknown subscription plan"
	ErrClientPrescriptionNotCompleted      = "Prescriptions can only be issued for completed appointments"
	ErrClientNotificationNotFound          = "Notification not found"
	ErrClientSubscriptionNotFound          = "No subscription found"
)

// Dev messages.
const (
	ErrDevValidationFailed               = "Request validation failed"
	ErrDevURLParamIDValidationFailed     = "URL parameter %s failed validation"
	ErrDevImageValidationFailed          = "Image validation failed"
	ErrDevCannotParseJSON                = "Failed to parse JSON body"
	ErrDevCannotParseTime                = "Failed to parse time value"
	ErrDevCannotMarshalJSON              = "Failed to marshal value to JSON"
	ErrDevFailedToHashPassword           = "Failed to hash password"
	ErrDevInvalidCredentials             = "Credentials do not match any user"
	ErrDevEmailAlreadyExists             = "Email already exists in users collection"
	ErrDevUsernameAlreadyExists          = "Username already exists in users collection"
	ErrDevAuthTokenMissing               = "Authorization header missing"
	ErrDevAuthTokenInvalid               = "JWT token invalid"
	ErrDevAuthTokenInvalidOrExpired      = "JWT token invalid or expired"
	ErrDevAuthGenerateToken              = "Failed to generate JWT token"
	ErrDevAuthSigningMethod              = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession             = "Session not found or expired in redis"
	ErrDevAuthRoleMismatch               = "Session role does not permit this operation"
	ErrDevServerDeadlineExceeded         = "Context deadline exceeded while processing request"
	ErrDevRedisGetData                   = "Failed to get data from redis"
	ErrDevRedisSetData                   = "Failed to set data in redis"
	ErrDevRedisDeleteData                = "Failed to delete data from redis"
	ErrDevRedisIncrementValue            = "Failed to increment value in redis"
	ErrDevRedisUnlock                    = "Failed to release redis lock"
	ErrDevDBFailedToFindDocument         = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument       = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument       = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument       = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments     = "MongoDB failed to iterate documents cursor"
	ErrDevDBFailedToCountDocuments       = "MongoDB failed to count documents"
	ErrDevDBStringNotObjectID            = "String is not a valid MongoDB ObjectID"
	ErrDevMinioFailedToCreateObject      = "Minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject     = "Minio failed to presign object in bucket %s"
	ErrDevRabbitMQPublish                = "RabbitMQ failed to publish message to queue %s"
	ErrDevSMTPSendEmail                  = "SMTP failed to send email via host %s"
	ErrDevCreateHTTPRequest              = "Failed to create outbound HTTP request"
	ErrDevSendHTTPRequest                = "Failed to send outbound HTTP request"
	ErrDevDecodeHTTPResponse             = "Failed to decode outbound HTTP response from %s"
	ErrDevPaymentGatewayCheckout         = "Payment gateway rejected checkout session creation"
	ErrDevCalendarCreateEvent            = "Calendar API rejected event creation"
	ErrDevDoctorNotExists                = "Doctor document does not exist"
	ErrDevBookingNotExists               = "Booking document does not exist"
	ErrDevSlotNotFree                    = "Matched time slot is not free"
	ErrDevSlotBooked                     = "Time slot is booked"
	ErrDevBookingInvalidTransition       = "Booking status transition not allowed"
	ErrDevBookingEndTimeNotPassed        = "Booking end time has not passed yet"
	ErrDevDoctorLockNotAcquired          = "Per-doctor lock could not be acquired"
	ErrDevSubscriptionPlanUnknown        = "Subscription plan code not present in plan table"
	ErrDevPrescriptionBookingNotComplete = "Prescription target booking is not completed"
	ErrDevChatNotExists                  = "Chat document does not exist"
	ErrDevBlogNotExists                  = "Blog document does not exist"
	ErrDevPrescriptionNotExists          = "Prescription document does not exist"
	ErrDevNotificationNotExists          = "Notification document does not exist"
	ErrDevSubscriptionNotExists          = "Subscription document does not exist"
	ErrDevWebhookKeyMismatch             = "Webhook key header does not match configured key"
)
