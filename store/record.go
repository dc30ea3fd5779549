package store

import (
	"math"

	"finaura/api/models"
)

// ProfileRecord is the wire shape of a profile before validation. Pointer fields
// distinguish an absent value from a zero one.
type ProfileRecord struct {
	Name           *string  `json:"name" bson:"name"`
	CurrentBalance *float64 `json:"current_balance" bson:"current_balance"`
	DaysLeft       *int     `json:"days_left" bson:"days_left"`
	HourlyWage     *float64 `json:"hourly_wage" bson:"hourly_wage"`
	Mood           *string  `json:"mood" bson:"mood"`
	SpendingDNA    *string  `json:"spending_dna" bson:"spending_dna"`
}

// SnapshotRecord mirrors the mock data document shared by the file and MongoDB stores.
type SnapshotRecord struct {
	Profile       *ProfileRecord               `json:"user_profile" bson:"user_profile"`
	Subscriptions []models.Subscription        `json:"subscriptions" bson:"subscriptions"`
	Gigs          []models.GigOpportunity      `json:"gig_opportunities" bson:"gig_opportunities"`
	Roommates     []models.RoommateLedgerEntry `json:"roommate_ledger" bson:"roommate_ledger"`
}

// ToProfile validates the record. Missing fields are reported as ErrMissingProfileData;
// a non-finite balance or a wage that is not a positive finite number as
// ErrInvalidProfileData. Nothing is defaulted.
func (r *ProfileRecord) ToProfile() (models.UserProfile, error) {
	if r == nil {
		return models.UserProfile{}, &models.ProfileFieldError{Fields: []string{"user_profile"}, Err: models.ErrMissingProfileData}
	}

	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.CurrentBalance == nil {
		missing = append(missing, "current_balance")
	}
	if r.DaysLeft == nil {
		missing = append(missing, "days_left")
	}
	if r.HourlyWage == nil {
		missing = append(missing, "hourly_wage")
	}
	if r.Mood == nil {
		missing = append(missing, "mood")
	}
	if len(missing) > 0 {
		return models.UserProfile{}, &models.ProfileFieldError{Fields: missing, Err: models.ErrMissingProfileData}
	}

	var invalid []string
	if math.IsNaN(*r.CurrentBalance) || math.IsInf(*r.CurrentBalance, 0) {
		invalid = append(invalid, "current_balance")
	}
	if !(*r.HourlyWage > 0) || math.IsInf(*r.HourlyWage, 0) {
		invalid = append(invalid, "hourly_wage")
	}
	if len(invalid) > 0 {
		return models.UserProfile{}, &models.ProfileFieldError{Fields: invalid, Err: models.ErrInvalidProfileData}
	}

	profile := models.UserProfile{
		Name:           *r.Name,
		CurrentBalance: *r.CurrentBalance,
		DaysLeft:       *r.DaysLeft,
		HourlyWage:     *r.HourlyWage,
		Mood:           *r.Mood,
	}
	if r.SpendingDNA != nil {
		profile.SpendingDNA = *r.SpendingDNA
	}
	return profile, nil
}

// ToSnapshot validates the profile and normalises the lists to non-nil slices.
func (r *SnapshotRecord) ToSnapshot() (*models.Snapshot, error) {
	profile, err := r.Profile.ToProfile()
	if err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Profile:       profile,
		Subscriptions: r.Subscriptions,
		Gigs:          r.Gigs,
		Roommates:     r.Roommates,
	}
	if snap.Subscriptions == nil {
		snap.Subscriptions = []models.Subscription{}
	}
	if snap.Gigs == nil {
		snap.Gigs = []models.GigOpportunity{}
	}
	if snap.Roommates == nil {
		snap.Roommates = []models.RoommateLedgerEntry{}
	}
	return snap, nil
}
