// Dashboard and history commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/internal/report"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show totals and per-airport counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		d, err := report.BuildDashboard(backend)
		if err != nil {
			return sysError(fmt.Errorf("dashboard: %w", err))
		}
		if flagJSON {
			return printJSON(cmd, d)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Flights:             %d\n", d.Totals.Flights)
		fmt.Fprintf(out, "Passengers:          %d\n", d.Totals.Passengers)
		fmt.Fprintf(out, "Transit passengers:  %d\n", d.Totals.TransitPassengers)
		printCounts(cmd, "Flights by origin", "ORIGIN", d.ByOrigin)
		printCounts(cmd, "Flights by destination", "DESTINATION", d.ByDestination)
		printCounts(cmd, "Flights by status", "STATUS", d.ByStatus)
		printCounts(cmd, "Transit passengers by airport", "AIRPORT", d.TransitByAirport)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show flights per day and per month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		h, err := report.BuildHistory(backend)
		if err != nil {
			return sysError(fmt.Errorf("history: %w", err))
		}
		if flagJSON {
			return printJSON(cmd, h)
		}
		printCounts(cmd, "Flights per day", "DAY", h.Daily)
		printCounts(cmd, "Flights per month", "MONTH", h.Monthly)
		return nil
	},
}
