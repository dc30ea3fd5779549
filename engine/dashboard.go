package engine

import "finaura/api/models"

// BuildDashboard composes the dashboard view from a snapshot. Gigs and roommates are
// passed through untouched; empty lists are rendered as empty, not null. Non-finite
// amounts cannot be rendered and are reported as invalid profile data.
func BuildDashboard(snap *models.Snapshot) (*models.Dashboard, error) {
	if snap == nil {
		return nil, models.ErrMissingProfileData
	}
	profile := snap.Profile
	var invalid []string
	if !isFinite(profile.CurrentBalance) {
		invalid = append(invalid, "current_balance")
	}
	if !isFinite(profile.HourlyWage) {
		invalid = append(invalid, "hourly_wage")
	}
	for _, sub := range snap.Subscriptions {
		if !isFinite(sub.Amount) {
			invalid = append(invalid, "subscriptions.amount")
			break
		}
	}
	if len(invalid) > 0 {
		return nil, &models.ProfileFieldError{Fields: invalid, Err: models.ErrInvalidProfileData}
	}

	allowance := SafeToSpend(profile.CurrentBalance, profile.DaysLeft)

	unusedSubs := UnusedSubscriptions(snap.Subscriptions)
	vampires := make([]models.VampireSubscription, 0, len(unusedSubs))
	for _, sub := range unusedSubs {
		vampires = append(vampires, models.VampireSubscription{Subscription: sub, Cost: sub.Amount})
	}

	gigs := snap.Gigs
	if gigs == nil {
		gigs = []models.GigOpportunity{}
	}
	roommates := snap.Roommates
	if roommates == nil {
		roommates = []models.RoommateLedgerEntry{}
	}

	var unused *models.VampireSubscription
	if len(vampires) > 0 {
		first := vampires[0]
		unused = &first
	}

	return &models.Dashboard{
		User:                 profile,
		SafeToSpend:          allowance,
		Gigs:                 gigs,
		Roommates:            roommates,
		VampireSubscriptions: vampires,
		UnusedSub:            unused,
		UserName:             profile.Name,
		SpendingDNA:          profile.SpendingDNA,
		SafeToSpendDaily:     allowance,
		DaysLeft:             profile.DaysLeft,
		Balance:              profile.CurrentBalance,
	}, nil
}
