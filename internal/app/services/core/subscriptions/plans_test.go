package subscriptions

import (
	"medxbay-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanAmount(t *testing.T) {
	t.Run("Standard Plan", func(t *testing.T) {
		amount, ok := PlanAmount(constvars.SubscriptionTierStandard, BillingCycleMonthly)
		assert.True(t, ok)
		assert.Equal(t, 49.0, amount)

		amount, ok = PlanAmount(constvars.SubscriptionTierStandard, BillingCycleYearly)
		assert.True(t, ok)
		assert.Equal(t, 490.0, amount)
	})

	t.Run("Premium Plan", func(t *testing.T) {
		amount, ok := PlanAmount(constvars.SubscriptionTierPremium, BillingCycleMonthly)
		assert.True(t, ok)
		assert.Equal(t, 99.0, amount)

		amount, ok = PlanAmount(constvars.SubscriptionTierPremium, BillingCycleYearly)
		assert.True(t, ok)
		assert.Equal(t, 990.0, amount)
	})

	t.Run("Unknown Plan", func(t *testing.T) {
		_, ok := PlanAmount("platinum", BillingCycleMonthly)
		assert.False(t, ok)

		_, ok = PlanAmount(constvars.SubscriptionTierFree, BillingCycleMonthly)
		assert.False(t, ok, "the free tier has no checkout price")
	})

	t.Run("Unknown Billing Cycle", func(t *testing.T) {
		_, ok := PlanAmount(constvars.SubscriptionTierStandard, "weekly")
		assert.False(t, ok)
	})
}
