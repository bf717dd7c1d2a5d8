// List command queries entities from a table with optional filtering.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <table> [key=value...]",
	Short: "List entities with optional filter",
	Long: `List queries entities from the specified table. Filters are key=value
pairs and are ANDed together.

  flights:     origin, destination, status, date_from, date_to, limit, offset
  passengers:  flight_id, min_age, max_age, name, limit, offset
  transits:    airport, date_from, date_to, limit, offset

Example:
  tower list flights
  tower list flights origin=MEX status=completed
  tower list passengers flight_id=3 min_age=60
  tower list transits airport=PTY date_from=2026-10-01 limit=5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tableName := args[0]
	filter, err := parseFilterArgs(args[1:])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := getTable(backend, tableName)
	if err != nil {
		return err
	}
	entities, err := table.Fetch(filter)
	if err != nil {
		return storeError("list "+tableName, err)
	}

	if flagJSON {
		return printJSON(cmd, entities)
	}
	if len(entities) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s found.\n", tableName)
		return nil
	}
	switch tableName {
	case types.TableFlights:
		printTable(cmd, flightHeader, flightRows(entities))
	case types.TablePassengers:
		printTable(cmd, passengerHeader, passengerRows(entities))
	case types.TableTransits:
		printTable(cmd, transitHeader, transitRows(entities))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\n", len(entities))
	return nil
}
