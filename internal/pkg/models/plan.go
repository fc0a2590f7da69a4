package models

// PlanSpec describes a subscription plan the platform sells. LookupKey is the
// stable identifier used to resolve the provider-side price.
type PlanSpec struct {
	Name        string `json:"name"`
	ProductName string `json:"product_name"`
	LookupKey   string `json:"lookup_key"`
	Amount      int64  `json:"amount"`
	Interval    string `json:"interval"`
}

// Plans is the plan catalog. Amounts are in IDR, which the provider treats as
// zero-decimal, so the numbers below are whole rupiah.
var Plans = map[string]PlanSpec{
	"starter": {
		Name:        "starter",
		ProductName: "Lapakin Starter",
		LookupKey:   "lapakin_starter_monthly",
		Amount:      99000,
		Interval:    "month",
	},
	"growth": {
		Name:        "growth",
		ProductName: "Lapakin Growth",
		LookupKey:   "lapakin_growth_monthly",
		Amount:      299000,
		Interval:    "month",
	},
	"scale": {
		Name:        "scale",
		ProductName: "Lapakin Scale",
		LookupKey:   "lapakin_scale_monthly",
		Amount:      999000,
		Interval:    "month",
	},
}

// GetPlan returns the plan spec for a plan name
func GetPlan(name string) (PlanSpec, bool) {
	plan, ok := Plans[name]
	return plan, ok
}

// PlanByLookupKey resolves a plan name from a provider price lookup key.
// Returns an empty string when the key is not one of ours.
func PlanByLookupKey(lookupKey string) string {
	for name, plan := range Plans {
		if plan.LookupKey == lookupKey {
			return name
		}
	}
	return ""
}
