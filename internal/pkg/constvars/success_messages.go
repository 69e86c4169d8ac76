package constvars

const (
	RegisterSuccessMessage           = "Successfully registered"
	LoginSuccessMessage              = "Successfully logged in"
	LogoutSuccessMessage             = "Successfully logged out"
	GetProfileSuccessMessage         = "Successfully fetched profile"
	UpdateProfileSuccessMessage      = "Successfully updated profile"
	UploadPictureSuccessMessage      = "Successfully uploaded profile picture"
	SearchDoctorsSuccessMessage      = "Successfully fetched doctors"
	GetDoctorSuccessMessage          = "Successfully fetched doctor"
	AddTimeSlotSuccessMessage        = "Successfully added time slot"
	ListTimeSlotsSuccessMessage      = "Successfully fetched time slots"
	DeleteTimeSlotSuccessMessage     = "Successfully removed time slot"
	CreateBookingSuccessMessage      = "Successfully created booking"
	ListBookingsSuccessMessage       = "Successfully fetched bookings"
	UpdateBookingSuccessMessage      = "Successfully updated booking status"
	SendMessageSuccessMessage        = "Successfully sent message"
	ListChatsSuccessMessage          = "Successfully fetched chats"
	ReadChatSuccessMessage           = "Successfully fetched chat messages"
	CreatePrescriptionSuccessMessage = "Successfully created prescription"
	ListPrescriptionsSuccessMessage  = "Successfully fetched prescriptions"
	GetPrescriptionSuccessMessage    = "Successfully fetched prescription"
	CreateCheckoutSuccessMessage     = "Successfully created checkout session"
	GetSubscriptionSuccessMessage    = "Successfully fetched subscription"
	WebhookProcessedSuccessMessage   = "Webhook processed"
	CreateBlogSuccessMessage         = "Successfully created blog post"
	UpdateBlogSuccessMessage         = "Successfully updated blog post"
	ListBlogsSuccessMessage          = "Successfully fetched blog posts"
	GetBlogSuccessMessage            = "Successfully fetched blog post"
	ModerateBlogSuccessMessage       = "Successfully moderated blog post"
	ListDoctorsAdminSuccessMessage   = "Successfully fetched doctors for review"
	VerifyDoctorSuccessMessage       = "Successfully updated doctor verification"
	DashboardCountsSuccessMessage    = "Successfully fetched dashboard counts"
	ListNotificationsSuccessMessage  = "Successfully fetched notifications"
	ReadNotificationSuccessMessage   = "Successfully marked notification as read"
)
