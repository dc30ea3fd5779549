package engine

import "finaura/api/models"

func fixtureSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Profile: models.UserProfile{
			Name:           "Aryan",
			CurrentBalance: 4200,
			DaysLeft:       15,
			HourlyWage:     115,
			Mood:           "Stressed",
			SpendingDNA:    "Impulse Buyer",
		},
		Subscriptions: []models.Subscription{
			{Name: "Netflix", Amount: 649, Status: models.SubscriptionUnused},
			{Name: "Spotify", Amount: 119, Status: models.SubscriptionUsed},
			{Name: "Cult.fit", Amount: 999, Status: models.SubscriptionUnused},
		},
		Gigs: []models.GigOpportunity{
			{"title": "Campus event photographer", "pay": 1500.0},
		},
		Roommates: []models.RoommateLedgerEntry{
			{"name": "Rahul", "amount": 850.0, "reason": "Electricity bill"},
		},
	}
}
