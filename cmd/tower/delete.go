// Delete command removes an entity by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <id>",
	Short: "Delete an entity by ID",
	Long: `Delete removes an entity from the specified table. Deleting a flight also
deletes the passengers booked on it.

Example:
  tower delete flights 12
  tower delete passengers 40`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
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
	if err := table.Delete(id); err != nil {
		return storeError("delete "+args[0]+" "+args[1], err)
	}

	if flagJSON {
		return printJSON(cmd, map[string]any{"table": args[0], "id": id, "deleted": true})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %d\n", args[0], id)
	return nil
}
