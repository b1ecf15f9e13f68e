package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahgbank/gbank-api/internal/orchestrators/bank"
)

var (
	parseFile string
	parseUser string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Run a one-shot bank update from a SavedVariables file",
	Long:  `Parse a BankItems SavedVariables dump from disk and persist the aggregated bank state.`,
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFile, "file", "", "path to the SavedVariables dump (required)")
	parseCmd.Flags().StringVar(&parseUser, "user", "", "username recorded as having run the update (required)")
	_ = parseCmd.MarkFlagRequired("file")
	_ = parseCmd.MarkFlagRequired("user")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := buildServices(cfg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(parseFile)
	if err != nil {
		return fmt.Errorf("failed to read dump: %w", err)
	}

	out, err := svc.bank.ParseData(context.Background(), &bank.ParseDataInput{
		RawData:  string(raw),
		Username: parseUser,
	})
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d characters, %d distinct items (%d cached), %dg %ds %dc\n",
		out.RunID, len(out.Characters), out.DistinctItems, out.CacheHits,
		out.Money.Gold, out.Money.Silver, out.Money.Copper)
	if out.SaveErrors > 0 {
		fmt.Printf("warning: %d save errors, check the logs\n", out.SaveErrors)
	}

	return nil
}
