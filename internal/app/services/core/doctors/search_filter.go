package doctors

import (
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/utils"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildSearchFilter turns a doctor search request into a Mongo filter.
// Only verified doctors on a paid tier are visible to patients.
func BuildSearchFilter(request *requests.SearchDoctors, now time.Time) bson.M {
	filter := bson.M{
		"verified": true,
		"subscriptionTier": bson.M{
			"$in": []string{constvars.SubscriptionTierStandard, constvars.SubscriptionTierPremium},
		},
	}

	var and []bson.M

	if request.What != "" {
		regex := caseInsensitive(request.What)
		and = append(and, bson.M{"$or": []bson.M{
			{"name": regex},
			{"specialties": regex},
			{"conditions": regex},
		}})
	}

	if request.Where != "" {
		regex := caseInsensitive(request.Where)
		and = append(and, bson.M{"$or": []bson.M{
			{"clinic.city": regex},
			{"clinic.state": regex},
			{"clinic.country": regex},
		}})
	}

	if request.Specialty != "" {
		filter["specialties"] = caseInsensitive(request.Specialty)
	}
	if request.Language != "" {
		filter["languages"] = caseInsensitive(request.Language)
	}
	if request.Gender != "" {
		filter["gender"] = request.Gender
	}
	if request.ConsultationType != "" {
		filter["consultationTypes"] = request.ConsultationType
	}
	if request.Country != "" {
		filter["clinic.country"] = caseInsensitive(request.Country)
	}
	if request.State != "" {
		filter["clinic.state"] = caseInsensitive(request.State)
	}
	if request.City != "" {
		filter["clinic.city"] = caseInsensitive(request.City)
	}

	if request.AvailableNow {
		// Dates and times sort lexicographically in these layouts, so a
		// same-day slot counts only while its start is still ahead of now.
		today := now.Format(utils.SlotDateLayout)
		filter["timeSlots"] = bson.M{"$elemMatch": bson.M{
			"status": constvars.TimeSlotStatusFree,
			"$or": []bson.M{
				{"date": bson.M{"$gt": today}},
				{"date": today, "startTime": bson.M{"$gt": now.Format(utils.SlotTimeLayout)}},
			},
		}}
	}

	if len(and) > 0 {
		filter["$and"] = and
	}

	return filter
}

func caseInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}
