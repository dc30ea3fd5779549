package engine

import "finaura/api/models"

// UnusedSubscriptions returns the subscriptions marked unused, in their original order.
// The result is never nil.
func UnusedSubscriptions(subs []models.Subscription) []models.Subscription {
	unused := make([]models.Subscription, 0, len(subs))
	for _, s := range subs {
		if s.Status == models.SubscriptionUnused {
			unused = append(unused, s)
		}
	}
	return unused
}
