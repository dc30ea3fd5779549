package models

// UserProfile is the financial snapshot of the current user. It is supplied by a
// profile store and never mutated by the engine.
type UserProfile struct {
	Name           string  `json:"name" bson:"name"`
	CurrentBalance float64 `json:"current_balance" bson:"current_balance"`
	DaysLeft       int     `json:"days_left" bson:"days_left"`
	HourlyWage     float64 `json:"hourly_wage" bson:"hourly_wage"`
	Mood           string  `json:"mood" bson:"mood"`
	SpendingDNA    string  `json:"spending_dna" bson:"spending_dna"`
}

type SubscriptionStatus string

const (
	SubscriptionUsed   SubscriptionStatus = "used"
	SubscriptionUnused SubscriptionStatus = "unused"
)

type Subscription struct {
	Name   string             `json:"name" bson:"name"`
	Amount float64            `json:"amount" bson:"amount"`
	Status SubscriptionStatus `json:"status" bson:"status"`
}

// GigOpportunity and RoommateLedgerEntry are forwarded as-is.
type GigOpportunity map[string]any

type RoommateLedgerEntry map[string]any

// Snapshot is everything a profile store returns for one request.
type Snapshot struct {
	Profile       UserProfile           `json:"user_profile"`
	Subscriptions []Subscription        `json:"subscriptions"`
	Gigs          []GigOpportunity      `json:"gig_opportunities"`
	Roommates     []RoommateLedgerEntry `json:"roommate_ledger"`
}
