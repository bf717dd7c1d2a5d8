// Seed command fills empty tables with sample data.
package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
)

var seedRandSeed int64

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill empty tables with sample data",
	Long: `Seed generates sample flights, transit records and passengers for tables
that are still empty; tables holding rows are left alone. Dates fall within
the last 30 days.

Example:
  tower seed
  tower seed --rand-seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := seedRandSeed
		if !cmd.Flags().Changed("rand-seed") {
			seed = nowFunc().UnixNano()
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		rep, err := backend.SeedSampleData(rand.New(rand.NewSource(seed)), nowFunc().UTC())
		if err != nil {
			return storeError("seed", err)
		}
		if flagJSON {
			return printJSON(cmd, rep)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d flights, %d transit records, %d passengers\n",
			rep.Flights, rep.Transits, rep.Passengers)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int64Var(&seedRandSeed, "rand-seed", 0, "random seed for reproducible data (default: time based)")
}
