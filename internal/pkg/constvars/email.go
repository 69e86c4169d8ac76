package constvars

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"
)

const (
	EmailSubjectBookingAccepted    = "Your appointment has been confirmed"
	EmailSubjectBookingRejected    = "Your appointment request was declined"
	EmailSubjectPrescriptionIssued = "A new prescription has been issued for you"
	EmailSubjectDoctorVerified     = "Your MedxBay profile has been verified"
	EmailSubjectDoctorRejected     = "Your MedxBay profile needs changes"
)

const (
	EmailBodyBookingAcceptedFormat    = "Hi %s,\r\n\r\nDr. %s has confirmed your appointment on %s at %s.%s\r\n\r\nMedxBay"
	EmailBodyBookingRejectedFormat    = "Hi %s,\r\n\r\nUnfortunately Dr. %s cannot take your appointment on %s at %s. Please pick another slot.\r\n\r\nMedxBay"
	EmailBodyPrescriptionIssuedFormat = "Hi %s,\r\n\r\nDr. %s has issued a prescription for your appointment on %s. You can view it in your dashboard.\r\n\r\nMedxBay"
	EmailBodyMeetLinkFragmentFormat   = "\r\n\r\nJoin the video consultation: %s"
)

const (
	ChatSystemMessageBookingAcceptedFormat = "Your appointment on %s at %s has been confirmed."
)

const (
	ImageAllowedProfilePictureFormats = "jpg,jpeg,png"
)
