package subscriptions

import "medxbay-service/internal/pkg/constvars"

const (
	BillingCycleMonthly = "monthly"
	BillingCycleYearly  = "yearly"
)

const planCurrency = "USD"

type planPrice struct {
	Monthly float64
	Yearly  float64
}

// Yearly is priced at ten months.
var planTable = map[string]planPrice{
	constvars.SubscriptionTierStandard: {Monthly: 49, Yearly: 490},
	constvars.SubscriptionTierPremium:  {Monthly: 99, Yearly: 990},
}

// PlanAmount resolves the charge for a plan and billing cycle. The second
// return is false for unknown combinations.
func PlanAmount(plan, billingCycle string) (float64, bool) {
	price, ok := planTable[plan]
	if !ok {
		return 0, false
	}
	switch billingCycle {
	case BillingCycleMonthly:
		return price.Monthly, true
	case BillingCycleYearly:
		return price.Yearly, true
	default:
		return 0, false
	}
}
