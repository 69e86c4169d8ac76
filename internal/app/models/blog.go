package models

type Blog struct {
	ID                 string   `bson:"_id,omitempty"`
	AuthorDoctorID     string   `bson:"authorDoctorId"`
	AuthorName         string   `bson:"authorName"`
	Title              string   `bson:"title"`
	Body               string   `bson:"body"`
	Category           string   `bson:"category,omitempty"`
	Tags               []string `bson:"tags,omitempty"`
	VerificationStatus string   `bson:"verificationStatus"`
	Priority           int      `bson:"priority"`
	TimeModel          `bson:",inline"`
}
