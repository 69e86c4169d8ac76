package doctors

import (
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchFilter(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	t.Run("Base Visibility Filter", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{}, now)

		assert.Equal(t, true, filter["verified"], "only verified doctors are searchable")
		assert.Equal(t, bson.M{"$in": []string{constvars.SubscriptionTierStandard, constvars.SubscriptionTierPremium}}, filter["subscriptionTier"], "free tier doctors stay hidden")
		assert.NotContains(t, filter, "$and")
	})

	t.Run("What Matches Name Specialties And Conditions", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{What: "cardio"}, now)

		and, ok := filter["$and"].([]bson.M)
		assert.True(t, ok, "$and should be present")
		assert.Len(t, and, 1)

		or, ok := and[0]["$or"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, or, 3)
		assert.Equal(t, primitive.Regex{Pattern: "cardio", Options: "i"}, or[0]["name"])
	})

	t.Run("Where Matches Clinic Location", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{Where: "London"}, now)

		and, ok := filter["$and"].([]bson.M)
		assert.True(t, ok)
		or, ok := and[0]["$or"].([]bson.M)
		assert.True(t, ok)
		assert.Equal(t, primitive.Regex{Pattern: "London", Options: "i"}, or[0]["clinic.city"])
	})

	t.Run("Regex Metacharacters Are Escaped", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{Specialty: "ENT (adult)"}, now)

		regex, ok := filter["specialties"].(primitive.Regex)
		assert.True(t, ok)
		assert.Equal(t, `ENT \(adult\)`, regex.Pattern)
	})

	t.Run("Exact Filters", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{
			Gender:           "female",
			ConsultationType: "video",
		}, now)

		assert.Equal(t, "female", filter["gender"])
		assert.Equal(t, "video", filter["consultationTypes"])
	})

	t.Run("Available Now", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{AvailableNow: true}, now)

		slots, ok := filter["timeSlots"].(bson.M)
		assert.True(t, ok)
		elem, ok := slots["$elemMatch"].(bson.M)
		assert.True(t, ok)
		assert.Equal(t, constvars.TimeSlotStatusFree, elem["status"])

		or, ok := elem["$or"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, or, 2)
		assert.Equal(t, bson.M{"$gt": "2026-03-10"}, or[0]["date"], "later days count regardless of start time")
		assert.Equal(t, "2026-03-10", or[1]["date"])
		assert.Equal(t, bson.M{"$gt": "09:00"}, or[1]["startTime"], "same-day slots whose start has passed are excluded")
	})

	t.Run("What And Where Combine", func(t *testing.T) {
		filter := BuildSearchFilter(&requests.SearchDoctors{What: "skin", Where: "Austin"}, now)

		and, ok := filter["$and"].([]bson.M)
		assert.True(t, ok)
		assert.Len(t, and, 2, "both clauses should be ANDed")
	})
}
