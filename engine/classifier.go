package engine

import (
	"fmt"
	"math"
	"strings"

	"finaura/api/models"

	"github.com/shopspring/decimal"
)

// DefaultReferencePrice is the demo purchase price used by the intervention rule.
// It is never extracted from the message text.
const DefaultReferencePrice = 3000

const (
	scriptText = "Generated Script: 'Hi Netflix Support, I am a student auditing my expenses. " +
		"I haven't used the service in 30 days. Please waive this month's fee and cancel.' " +
		"Want me to send this?"
	socialText = "Bill Arbitrator: I checked the roommate ledger. Want me to send a friendly, " +
		"no-drama reminder so everyone settles their share of the shared bills?"
	generalText = "I'm here to help. How are you feeling about your budget today?"
)

// Options fixes the tunable parts of the rule table.
type Options struct {
	ReferencePrice            int
	CurrencySymbol            string
	ShoesTriggersIntervention bool
	ComfortEnabled            bool
}

// DefaultOptions returns the options the demo ships with.
func DefaultOptions() Options {
	return Options{
		ReferencePrice:            DefaultReferencePrice,
		CurrencySymbol:            "₹",
		ShoesTriggersIntervention: true,
		ComfortEnabled:            true,
	}
}

// rule is one row of the classification table: the first rule whose match returns
// true decides both the intent and the reply.
type rule struct {
	intent  models.Intent
	match   func(msg string, snap *models.Snapshot) bool
	respond func(snap *models.Snapshot) (string, error)
}

// Engine classifies chat messages against an ordered rule table.
type Engine struct {
	opts  Options
	rules []rule
}

func New(opts Options) *Engine {
	if opts.ReferencePrice <= 0 {
		opts.ReferencePrice = DefaultReferencePrice
	}
	e := &Engine{opts: opts}
	e.rules = e.buildRules()
	return e
}

func (e *Engine) Options() Options {
	return e.opts
}

func (e *Engine) buildRules() []rule {
	buyKeywords := []string{"buy", fmt.Sprint(e.opts.ReferencePrice)}
	if e.opts.ShoesTriggersIntervention {
		buyKeywords = append(buyKeywords, "shoes")
	}

	rules := []rule{
		{
			intent: models.IntentIntervention,
			match: func(msg string, _ *models.Snapshot) bool {
				return containsAny(msg, buyKeywords)
			},
			respond: e.interventionText,
		},
		{
			intent: models.IntentScript,
			match: func(msg string, snap *models.Snapshot) bool {
				return containsAny(msg, []string{"cancel", "netflix"}) ||
					containsAny(msg, subscriptionNames(snap))
			},
			respond: fixed(scriptText),
		},
		{
			intent: models.IntentSocial,
			match: func(msg string, snap *models.Snapshot) bool {
				return containsAny(msg, []string{"owe", "split"}) ||
					containsAny(msg, roommateNames(snap))
			},
			respond: fixed(socialText),
		},
	}

	if e.opts.ComfortEnabled {
		rules = append(rules, rule{
			intent: models.IntentComfort,
			match: func(msg string, _ *models.Snapshot) bool {
				return containsAny(msg, []string{"broke", "worried"})
			},
			respond: e.comfortText,
		})
	}
	return rules
}

// Classify maps a message to an intent and its canned reply. The result depends only
// on the text, the snapshot and the engine options.
func (e *Engine) Classify(text string, snap *models.Snapshot) (models.InterventionResponse, error) {
	if snap == nil {
		return models.InterventionResponse{}, models.ErrMissingProfileData
	}
	msg := strings.ToLower(text)
	for _, r := range e.rules {
		if !r.match(msg, snap) {
			continue
		}
		reply, err := r.respond(snap)
		if err != nil {
			return models.InterventionResponse{}, err
		}
		return models.InterventionResponse{Text: reply, Intent: r.intent}, nil
	}
	return models.InterventionResponse{Text: generalText, Intent: models.IntentGeneral}, nil
}

// EffortHours converts a price into whole hours of work at the given wage. The wage
// must be positive and finite; the result saturates at the int range.
func EffortHours(price int, hourlyWage float64) (int, error) {
	if !(hourlyWage > 0) || math.IsInf(hourlyWage, 0) {
		return 0, &models.ProfileFieldError{Fields: []string{"hourly_wage"}, Err: models.ErrInvalidProfileData}
	}
	hours := decimal.NewFromInt(int64(price)).Div(decimal.NewFromFloat(hourlyWage))
	return floorInt(hours), nil
}

func (e *Engine) interventionText(snap *models.Snapshot) (string, error) {
	hours, err := EffortHours(e.opts.ReferencePrice, snap.Profile.HourlyWage)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("🛑 STOP!! That %s%d purchase costs %d hours of work. Since you're feeling '%s', "+
		"this might be stress-spending. Wait 24 hours?",
		e.opts.CurrencySymbol, e.opts.ReferencePrice, hours, snap.Profile.Mood), nil
}

func (e *Engine) comfortText(snap *models.Snapshot) (string, error) {
	p := snap.Profile
	if !isFinite(p.CurrentBalance) {
		return "", &models.ProfileFieldError{Fields: []string{"current_balance"}, Err: models.ErrInvalidProfileData}
	}
	daily := SafeToSpend(p.CurrentBalance, p.DaysLeft)
	return fmt.Sprintf("Take a breath. You still have %s%s in the bank, and %s%d a day is safe to spend "+
		"for the next %d days. You're not broke, you're budgeting.",
		e.opts.CurrencySymbol, decimal.NewFromFloat(p.CurrentBalance).String(),
		e.opts.CurrencySymbol, daily, p.DaysLeft), nil
}

func fixed(text string) func(*models.Snapshot) (string, error) {
	return func(*models.Snapshot) (string, error) {
		return text, nil
	}
}

func containsAny(msg string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(msg, k) {
			return true
		}
	}
	return false
}

func subscriptionNames(snap *models.Snapshot) []string {
	names := make([]string, 0, len(snap.Subscriptions))
	for _, s := range snap.Subscriptions {
		names = append(names, strings.ToLower(strings.TrimSpace(s.Name)))
	}
	return names
}

// roommateNames reads the optional "name" key of each ledger entry.
func roommateNames(snap *models.Snapshot) []string {
	names := make([]string, 0, len(snap.Roommates))
	for _, entry := range snap.Roommates {
		if name, ok := entry["name"].(string); ok {
			names = append(names, strings.ToLower(strings.TrimSpace(name)))
		}
	}
	return names
}
