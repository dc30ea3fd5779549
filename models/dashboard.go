package models

// Dashboard is the summary view served on /dashboard. The flat fields mirror what
// the web client reads directly.
type Dashboard struct {
	User                 UserProfile           `json:"user"`
	SafeToSpend          int                   `json:"safe_to_spend"`
	Gigs                 []GigOpportunity      `json:"gigs"`
	Roommates            []RoommateLedgerEntry `json:"roommates"`
	VampireSubscriptions []VampireSubscription `json:"vampire_subscriptions"`
	UnusedSub            *VampireSubscription  `json:"unused_sub"`

	UserName         string  `json:"user_name"`
	SpendingDNA      string  `json:"spending_dna"`
	SafeToSpendDaily int     `json:"safe_to_spend_daily"`
	DaysLeft         int     `json:"days_left"`
	Balance          float64 `json:"balance"`
}

// VampireSubscription is an unused subscription as the dashboard renders it. Cost
// repeats Amount under the key the web client reads.
type VampireSubscription struct {
	Subscription
	Cost float64 `json:"cost"`
}
