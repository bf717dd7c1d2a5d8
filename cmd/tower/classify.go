// Classify commands grade ages against the configured fuzzy age brackets.
package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tower/internal/report"
	"github.com/mesh-intelligence/tower/pkg/fuzzy"
	"github.com/mesh-intelligence/tower/pkg/types"
)

var classifyFlight int64

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Grade ages against the fuzzy age brackets",
}

var classifyAgeCmd = &cobra.Command{
	Use:   "age <years>",
	Short: "Show the bracket memberships of an age",
	Long: `Age prints the degree, between 0 and 1, to which the age belongs to each
configured bracket, in configuration order.

Example:
  tower classify age 29
  tower classify age 57 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := strconv.ParseFloat(args[0], 64)
		if err != nil || math.IsNaN(age) || math.IsInf(age, 0) {
			return userError(fmt.Errorf("invalid age %q", args[0]))
		}
		c, err := newClassifier()
		if err != nil {
			return err
		}

		r := c.Catalog().Evaluate(age)
		if flagJSON {
			return printJSON(cmd, r)
		}
		printMemberships(cmd, r)
		return nil
	},
}

var classifyPassengersCmd = &cobra.Command{
	Use:   "passengers",
	Short: "Classify stored passengers by age",
	Long: `Passengers assigns every passenger, or those of one flight, to the bracket
with the highest membership degree and prints a histogram of the brackets.
Passengers with degree 0 in every bracket are reported as unclassified.

Example:
  tower classify passengers
  tower classify passengers --flight 3`,
	Args: cobra.NoArgs,
	RunE: runClassifyPassengers,
}

func init() {
	classifyPassengersCmd.Flags().Int64Var(&classifyFlight, "flight", 0, "only passengers of this flight")

	classifyCmd.AddCommand(classifyAgeCmd)
	classifyCmd.AddCommand(classifyPassengersCmd)
}

func runClassifyPassengers(cmd *cobra.Command, args []string) error {
	c, err := newClassifier()
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := getTable(backend, types.TablePassengers)
	if err != nil {
		return err
	}
	filter := types.Filter{}
	if classifyFlight > 0 {
		filter["flight_id"] = classifyFlight
	}
	entities, err := table.Fetch(filter)
	if err != nil {
		return storeError("list passengers", err)
	}
	passengers := make([]*types.Passenger, len(entities))
	for i, e := range entities {
		passengers[i] = e.(*types.Passenger)
	}

	rows := c.ClassifyPassengers(passengers)
	histogram := report.BracketHistogram(c.Catalog(), rows)
	if flagJSON {
		return printJSON(cmd, map[string]any{
			"passengers": rows,
			"histogram":  histogram,
		})
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No passengers found.")
		return nil
	}
	body := make([][]string, len(rows))
	for i, r := range rows {
		body[i] = []string{
			strconv.FormatInt(r.Passenger.PassengerID, 10),
			r.Passenger.Name,
			strconv.Itoa(r.Passenger.Age),
			r.Bracket,
			formatDegree(r.Degree),
		}
	}
	printTable(cmd, []string{"ID", "NAME", "AGE", "BRACKET", "DEGREE"}, body)
	printCounts(cmd, "Passengers by bracket", "BRACKET", histogram)
	return nil
}

// printMemberships prints one row per bracket, marking the strongest.
func printMemberships(cmd *cobra.Command, r fuzzy.Result) {
	best, ok := report.Strongest(r)
	rows := make([][]string, len(r.Memberships))
	for i, e := range r.Memberships {
		mark := ""
		if ok && e.Set == best.Set {
			mark = "*"
		}
		rows[i] = []string{e.Set, formatDegree(e.Degree), mark}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Age %s\n", strconv.FormatFloat(r.Value, 'f', -1, 64))
	printTable(cmd, []string{"BRACKET", "DEGREE", ""}, rows)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), report.Unclassified)
	}
}

func formatDegree(d float64) string {
	return strconv.FormatFloat(d, 'f', 3, 64)
}
