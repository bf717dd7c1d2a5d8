// Passenger commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/pkg/types"
)

var (
	passengerID     int64
	passengerFlight int64
	passengerName   string
	passengerAge    int
	passengerTicket string
)

var passengerCmd = &cobra.Command{
	Use:   "passenger",
	Short: "Manage passengers",
}

var passengerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Book a passenger on a flight",
	Long: `Add books a passenger on an existing flight. A ticket code is issued when
--ticket is omitted.

Example:
  tower passenger add --flight 3 --name "Ana López" --age 34
  tower passenger add --flight 3 --name "Pedro Pérez" --age 61 --ticket TCK-40213`,
	Args: cobra.NoArgs,
	RunE: runPassengerAdd,
}

func init() {
	passengerAddCmd.Flags().Int64Var(&passengerID, "id", 0, "replace the passenger with this ID")
	passengerAddCmd.Flags().Int64Var(&passengerFlight, "flight", 0, "flight ID (required)")
	passengerAddCmd.Flags().StringVar(&passengerName, "name", "", "full name (required)")
	passengerAddCmd.Flags().IntVar(&passengerAge, "age", 0, "age in years (required)")
	passengerAddCmd.Flags().StringVar(&passengerTicket, "ticket", "", "ticket code (default: generated)")
	_ = passengerAddCmd.MarkFlagRequired("flight")
	_ = passengerAddCmd.MarkFlagRequired("name")
	_ = passengerAddCmd.MarkFlagRequired("age")

	passengerCmd.AddCommand(passengerAddCmd)
}

func runPassengerAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := getTable(backend, types.TablePassengers)
	if err != nil {
		return err
	}

	p := &types.Passenger{
		FlightID: passengerFlight,
		Name:     passengerName,
		Age:      passengerAge,
		Ticket:   passengerTicket,
	}
	id, err := table.Set(passengerID, p)
	if err != nil {
		return storeError("save passenger", err)
	}

	if flagJSON {
		return printJSON(cmd, p)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved passenger %d: %s (ticket %s) on flight %d\n",
		id, p.Name, p.Ticket, p.FlightID)
	return nil
}

func passengerRows(entities []any) [][]string {
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		p := e.(*types.Passenger)
		rows = append(rows, []string{
			strconv.FormatInt(p.PassengerID, 10),
			strconv.FormatInt(p.FlightID, 10),
			p.Ticket,
			p.Name,
			strconv.Itoa(p.Age),
		})
	}
	return rows
}

var passengerHeader = []string{"ID", "FLIGHT", "TICKET", "NAME", "AGE"}
