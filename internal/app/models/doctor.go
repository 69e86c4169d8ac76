package models

// TimeSlot is embedded on the doctor document. Bookings reference a slot by
// (date, startTime); reconciliation in the booking usecase matches on both.
type TimeSlot struct {
	Date      string `bson:"date" json:"date"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	Status    string `bson:"status" json:"status"`
}

type ClinicLocation struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
}

type Doctor struct {
	ID                 string         `bson:"_id,omitempty"`
	UserID             string         `bson:"userId"`
	Name               string         `bson:"name"`
	Email              string         `bson:"email"`
	Gender             string         `bson:"gender,omitempty"`
	Title              string         `bson:"title,omitempty"`
	AboutMe            string         `bson:"aboutMe,omitempty"`
	Specialties        []string       `bson:"specialties,omitempty"`
	Conditions         []string       `bson:"conditions,omitempty"`
	Languages          []string       `bson:"languages,omitempty"`
	ConsultationTypes  []string       `bson:"consultationTypes,omitempty"`
	ConsultationFee    float64        `bson:"consultationFee,omitempty"`
	Currency           string         `bson:"currency,omitempty"`
	Clinic             ClinicLocation `bson:"clinic,omitempty"`
	TimeSlots          []TimeSlot     `bson:"timeSlots,omitempty"`
	ProfilePictureKey  string         `bson:"profilePictureKey,omitempty"`
	Verified           bool           `bson:"verified"`
	SubscriptionTier   string         `bson:"subscriptionTier"`
	SubscriptionExpiry *int64         `bson:"subscriptionExpiry,omitempty"`
	Rating             float64        `bson:"rating,omitempty"`
	TimeModel          `bson:",inline"`
}
