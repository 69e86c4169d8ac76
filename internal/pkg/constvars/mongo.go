package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionPatients      = "patients"
	MongoCollectionBookings      = "bookings"
	MongoCollectionChats         = "chats"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionSubscriptions = "subscriptions"
	MongoCollectionBlogs         = "blogs"
	MongoCollectionNotifications = "notifications"
)
