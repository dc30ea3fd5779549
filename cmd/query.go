package cmd

import (
	"fmt"
	"os"
	"strings"

	"finaura/api/engine"
	"finaura/api/receipt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard payload",
	RunE:  runDashboard,
}

var chatCmd = &cobra.Command{
	Use:   "chat <message...>",
	Short: "Classify a chat message and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

var scanCmd = &cobra.Command{
	Use:   "scan [image]",
	Short: "Scan a receipt image",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.AddCommand(dashboardCmd, chatCmd, scanCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	profiles, closeProfiles, err := openProvider()
	if err != nil {
		return err
	}
	defer closeProfiles()

	snap, err := profiles.Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	dashboard, err := engine.BuildDashboard(snap)
	if err != nil {
		return err
	}
	return printJSON(cmd, dashboard)
}

func runChat(cmd *cobra.Command, args []string) error {
	profiles, closeProfiles, err := openProvider()
	if err != nil {
		return err
	}
	defer closeProfiles()

	snap, err := profiles.Snapshot(cmd.Context())
	if err != nil {
		return err
	}
	reply, err := engine.New(cfg.EngineOptions()).Classify(strings.Join(args, " "), snap)
	if err != nil {
		return err
	}
	return printJSON(cmd, reply)
}

func runScan(cmd *cobra.Command, args []string) error {
	var (
		image    []byte
		filename string
	)
	if len(args) == 1 {
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("read receipt image: %w", err)
		}
		image = data
	}

	record, err := receipt.Stub{}.Scan(cmd.Context(), image, filename)
	if err != nil {
		return err
	}
	return printJSON(cmd, record)
}
