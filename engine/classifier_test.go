package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"finaura/api/models"
)

func TestClassify(t *testing.T) {
	e := New(DefaultOptions())
	snap := fixtureSnapshot()

	tests := []struct {
		name   string
		text   string
		intent models.Intent
	}{
		{"buy shoes", "I want to buy new shoes", models.IntentIntervention},
		{"shoes only", "these shoes look great", models.IntentIntervention},
		{"price token", "it's only 3000", models.IntentIntervention},
		{"cancel netflix", "please cancel netflix", models.IntentScript},
		{"subscription name", "is cult.fit worth it", models.IntentScript},
		{"owe roommate", "Rahul, I owe you for electricity", models.IntentSocial},
		{"split", "can we split the wifi bill", models.IntentSocial},
		{"roommate name only", "rahul keeps asking me", models.IntentSocial},
		{"broke", "I'm so broke", models.IntentComfort},
		{"worried", "worried about rent", models.IntentComfort},
		{"fallback", "how's the weather", models.IntentGeneral},
		{"empty", "", models.IntentGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Classify(tt.text, snap)
			if err != nil {
				t.Fatalf("Classify(%q): %v", tt.text, err)
			}
			if got.Intent != tt.intent {
				t.Errorf("Classify(%q) intent = %q, want %q", tt.text, got.Intent, tt.intent)
			}
		})
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	e := New(DefaultOptions())
	snap := fixtureSnapshot()

	cases := map[string]models.Intent{
		"I want to buy and also cancel":    models.IntentIntervention,
		"cancel it, I owe rahul":           models.IntentScript,
		"I owe money and I'm broke":        models.IntentSocial,
		"buy now, worried later":           models.IntentIntervention,
		"netflix split with my roommates?": models.IntentScript,
	}
	for text, want := range cases {
		got, err := e.Classify(text, snap)
		if err != nil {
			t.Fatalf("Classify(%q): %v", text, err)
		}
		if got.Intent != want {
			t.Errorf("Classify(%q) = %q, want %q", text, got.Intent, want)
		}
	}
}

func TestClassifyIsDeterministicAndCaseInsensitive(t *testing.T) {
	e := New(DefaultOptions())
	snap := fixtureSnapshot()

	lower, err := e.Classify("buy shoes", snap)
	if err != nil {
		t.Fatal(err)
	}
	upper, err := e.Classify("BUY shoes", snap)
	if err != nil {
		t.Fatal(err)
	}
	if lower != upper {
		t.Errorf("case changed the result: %+v vs %+v", lower, upper)
	}

	for i := 0; i < 5; i++ {
		again, _ := e.Classify("buy shoes", snap)
		if again != lower {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, lower)
		}
	}
}

func TestClassifyResponses(t *testing.T) {
	e := New(DefaultOptions())
	snap := fixtureSnapshot()

	got, _ := e.Classify("I want to buy new shoes", snap)
	want := "🛑 STOP!! That ₹3000 purchase costs 26 hours of work. Since you're feeling 'Stressed', " +
		"this might be stress-spending. Wait 24 hours?"
	if got.Text != want {
		t.Errorf("intervention text = %q, want %q", got.Text, want)
	}

	got, _ = e.Classify("please cancel netflix", snap)
	if got.Text != scriptText {
		t.Errorf("script text = %q", got.Text)
	}

	got, _ = e.Classify("Rahul, I owe you for electricity", snap)
	if got.Text != socialText {
		t.Errorf("social text = %q", got.Text)
	}

	got, _ = e.Classify("I'm broke", snap)
	if !strings.Contains(got.Text, "₹4200 in the bank") || !strings.Contains(got.Text, "₹224 a day") ||
		!strings.Contains(got.Text, "next 15 days") {
		t.Errorf("comfort text = %q", got.Text)
	}

	got, _ = e.Classify("how's the weather", snap)
	if got.Text != generalText {
		t.Errorf("general text = %q", got.Text)
	}
}

func TestClassifyOptions(t *testing.T) {
	snap := fixtureSnapshot()

	opts := DefaultOptions()
	opts.ShoesTriggersIntervention = false
	opts.ComfortEnabled = false
	e := New(opts)

	for _, text := range []string{"nice shoes", "I'm broke", "so worried"} {
		got, err := e.Classify(text, snap)
		if err != nil {
			t.Fatal(err)
		}
		if got.Intent != models.IntentGeneral {
			t.Errorf("Classify(%q) = %q, want general", text, got.Intent)
		}
	}

	got, _ := e.Classify("buy shoes", snap)
	if got.Intent != models.IntentIntervention {
		t.Errorf("buy should still intervene, got %q", got.Intent)
	}

	opts = DefaultOptions()
	opts.ReferencePrice = 1150
	opts.CurrencySymbol = "$"
	got, _ = New(opts).Classify("is 1150 too much?", snap)
	if got.Intent != models.IntentIntervention || !strings.Contains(got.Text, "$1150 purchase costs 10 hours") {
		t.Errorf("custom reference price: %+v", got)
	}
}

func TestClassifyInvalidWage(t *testing.T) {
	e := New(DefaultOptions())
	for _, wage := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		snap := fixtureSnapshot()
		snap.Profile.HourlyWage = wage

		_, err := e.Classify("buy shoes", snap)
		if !errors.Is(err, models.ErrInvalidProfileData) {
			t.Errorf("wage %v: expected ErrInvalidProfileData, got %v", wage, err)
		}

		got, err := e.Classify("please cancel netflix", snap)
		if err != nil || got.Intent != models.IntentScript {
			t.Errorf("wage %v should not affect other rules: %+v, %v", wage, got, err)
		}
	}
}

func TestClassifyNilSnapshot(t *testing.T) {
	if _, err := New(DefaultOptions()).Classify("hello", nil); !errors.Is(err, models.ErrMissingProfileData) {
		t.Errorf("expected ErrMissingProfileData, got %v", err)
	}
}

func TestEffortHours(t *testing.T) {
	hours, err := EffortHours(3000, 115)
	if err != nil || hours != 26 {
		t.Errorf("EffortHours(3000, 115) = %d, %v; want 26", hours, err)
	}
	hours, err = EffortHours(3000, 1000.5)
	if err != nil || hours != 2 {
		t.Errorf("EffortHours(3000, 1000.5) = %d, %v; want 2", hours, err)
	}
}

func TestClassifyNonFiniteBalance(t *testing.T) {
	e := New(DefaultOptions())
	for _, balance := range []float64{math.NaN(), math.Inf(1)} {
		snap := fixtureSnapshot()
		snap.Profile.CurrentBalance = balance

		_, err := e.Classify("I'm broke", snap)
		if !errors.Is(err, models.ErrInvalidProfileData) {
			t.Errorf("balance %v: expected ErrInvalidProfileData, got %v", balance, err)
		}
	}
}

func TestEffortHoursSaturates(t *testing.T) {
	hours, err := EffortHours(3000, 1e-30)
	if err != nil || hours != math.MaxInt {
		t.Errorf("EffortHours(3000, 1e-30) = %d, %v; want %d", hours, err, math.MaxInt)
	}
}
