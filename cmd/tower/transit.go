// Transit commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/pkg/types"
)

var (
	transitID         int64
	transitDate       string
	transitAirport    string
	transitPassengers int
)

var transitCmd = &cobra.Command{
	Use:   "transit",
	Short: "Manage transit passenger counts",
}

var transitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record passengers in transit at an airport",
	Long: `Add records how many passengers passed through an airport on a day.

Example:
  tower transit add --airport PTY --passengers 640
  tower transit add --date 2026-10-01 --airport SCL --passengers 210`,
	Args: cobra.NoArgs,
	RunE: runTransitAdd,
}

func init() {
	transitAddCmd.Flags().Int64Var(&transitID, "id", 0, "replace the record with this ID")
	transitAddCmd.Flags().StringVar(&transitDate, "date", "", "date YYYY-MM-DD (default: today)")
	transitAddCmd.Flags().StringVar(&transitAirport, "airport", "", "airport code (required)")
	transitAddCmd.Flags().IntVar(&transitPassengers, "passengers", 0, "passengers in transit")
	_ = transitAddCmd.MarkFlagRequired("airport")

	transitCmd.AddCommand(transitAddCmd)
}

func runTransitAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(transitDate)
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := getTable(backend, types.TableTransits)
	if err != nil {
		return err
	}

	tr := &types.Transit{Date: date, Airport: transitAirport, Passengers: transitPassengers}
	id, err := table.Set(transitID, tr)
	if err != nil {
		return storeError("save transit", err)
	}

	if flagJSON {
		return printJSON(cmd, tr)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved transit %d: %d passengers at %s on %s\n",
		id, tr.Passengers, tr.Airport, tr.Date.Format(types.DateLayout))
	return nil
}

func transitRows(entities []any) [][]string {
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		tr := e.(*types.Transit)
		rows = append(rows, []string{
			strconv.FormatInt(tr.TransitID, 10),
			tr.Date.Format(types.DateLayout),
			tr.Airport,
			strconv.Itoa(tr.Passengers),
		})
	}
	return rows
}

var transitHeader = []string{"ID", "DATE", "AIRPORT", "PASSENGERS"}
