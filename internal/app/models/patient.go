package models

type Patient struct {
	ID                string `bson:"_id,omitempty"`
	UserID            string `bson:"userId"`
	Name              string `bson:"name"`
	Email             string `bson:"email"`
	Gender            string `bson:"gender,omitempty"`
	DateOfBirth       string `bson:"dateOfBirth,omitempty"`
	Phone             string `bson:"phone,omitempty"`
	City              string `bson:"city,omitempty"`
	Country           string `bson:"country,omitempty"`
	ProfilePictureKey string `bson:"profilePictureKey,omitempty"`
	TimeModel         `bson:",inline"`
}
