package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"finaura/api/models"
)

const testData = `{
  "user_profile": {"name": "Aryan", "current_balance": 4200, "days_left": 15, "hourly_wage": 115, "mood": "Stressed", "spending_dna": "Impulse Buyer"},
  "subscriptions": [{"name": "Netflix", "amount": 649, "status": "unused"}],
  "gig_opportunities": [],
  "roommate_ledger": [{"name": "Rahul", "amount": 850}]
}`

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "mock_data.json")
	if err := os.WriteFile(dataPath, []byte(testData), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("store:\n  driver: file\n  file_path: "+dataPath+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("MOCK_DATA_PATH", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config", configPath))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.Bytes()
}

func TestChatCommand(t *testing.T) {
	var reply models.InterventionResponse
	if err := json.Unmarshal(run(t, "chat", "I", "want", "to", "buy", "new", "shoes"), &reply); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if reply.Intent != models.IntentIntervention {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestDashboardCommand(t *testing.T) {
	var dashboard models.Dashboard
	if err := json.Unmarshal(run(t, "dashboard"), &dashboard); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if dashboard.SafeToSpend != 224 || dashboard.UnusedSub == nil {
		t.Errorf("unexpected dashboard: %+v", dashboard)
	}
}

func TestScanCommand(t *testing.T) {
	var record models.ReceiptRecord
	if err := json.Unmarshal(run(t, "scan"), &record); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if record.Merchant != "Domino's Pizza" {
		t.Errorf("unexpected receipt: %+v", record)
	}
}
