// Flight commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/pkg/types"
)

var (
	flightID          int64
	flightDate        string
	flightOrigin      string
	flightDestination string
	flightPassengers  int
	flightStatus      string
)

var flightCmd = &cobra.Command{
	Use:   "flight",
	Short: "Manage flights",
}

var flightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a flight",
	Long: `Add records a flight between two airports. Airport codes are upper-cased.

With --id the flight with that ID is replaced instead of a new one created.

Example:
  tower flight add --origin MEX --destination BOG --passengers 180
  tower flight add --date 2026-10-01 --origin JFK --destination MAD --status completed
  tower flight add --id 12 --origin JFK --destination MAD --status cancelled`,
	Args: cobra.NoArgs,
	RunE: runFlightAdd,
}

func init() {
	flightAddCmd.Flags().Int64Var(&flightID, "id", 0, "replace the flight with this ID")
	flightAddCmd.Flags().StringVar(&flightDate, "date", "", "flight date YYYY-MM-DD (default: today)")
	flightAddCmd.Flags().StringVar(&flightOrigin, "origin", "", "origin airport code (required)")
	flightAddCmd.Flags().StringVar(&flightDestination, "destination", "", "destination airport code (required)")
	flightAddCmd.Flags().IntVar(&flightPassengers, "passengers", 0, "passengers on board")
	flightAddCmd.Flags().StringVar(&flightStatus, "status", types.FlightInProgress, "in_progress, completed or cancelled")
	_ = flightAddCmd.MarkFlagRequired("origin")
	_ = flightAddCmd.MarkFlagRequired("destination")

	flightCmd.AddCommand(flightAddCmd)
}

func runFlightAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag(flightDate)
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := getTable(backend, types.TableFlights)
	if err != nil {
		return err
	}

	flight := &types.Flight{
		Date:        date,
		Origin:      flightOrigin,
		Destination: flightDestination,
		Passengers:  flightPassengers,
		Status:      flightStatus,
	}
	id, err := table.Set(flightID, flight)
	if err != nil {
		return storeError("save flight", err)
	}

	if flagJSON {
		return printJSON(cmd, flight)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved flight %d: %s -> %s on %s\n",
		id, flight.Origin, flight.Destination, flight.Date.Format(types.DateLayout))
	return nil
}

func flightRows(entities []any) [][]string {
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		f := e.(*types.Flight)
		rows = append(rows, []string{
			strconv.FormatInt(f.FlightID, 10),
			f.Date.Format(types.DateLayout),
			f.Origin,
			f.Destination,
			strconv.Itoa(f.Passengers),
			f.Status,
		})
	}
	return rows
}

var flightHeader = []string{"ID", "DATE", "ORIGIN", "DESTINATION", "PASSENGERS", "STATUS"}
