package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ourasync",
	Short: "Sync Oura ring sleep data into a database, one row per day",
	Long: `ourasync pulls daily sleep summaries and per-session detail from the
Oura v2 API, reconciles them into exactly one row per calendar day
(zero-filled where the ring was not worn), and upserts the result into a
database table. Re-running over the same range is always safe.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the config file")
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
