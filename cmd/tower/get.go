// Get command retrieves an entity by ID from a table.
package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <table> <id>",
	Short: "Get an entity by ID",
	Long: `Get retrieves an entity from the specified table by its ID and prints it
as JSON.

Valid table names: flights, passengers, transits

Example:
  tower get flights 12
  tower get passengers 40`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	table, err := getTable(backend, args[0])
	if err != nil {
		return err
	}
	entity, err := table.Get(id)
	if err != nil {
		return storeError(args[0]+" "+args[1], err)
	}
	return printJSON(cmd, entity)
}
