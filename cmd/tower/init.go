// Init command for the tower CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tower configuration and storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// PersistentPreRunE already created the config dir and config.yaml.
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		if flagJSON {
			return printJSON(cmd, map[string]string{
				"config_dir": configDirPath,
				"data_dir":   backend.DataDir(),
			})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Tower initialized successfully")
		fmt.Fprintln(out, "  config:", configDirPath)
		fmt.Fprintln(out, "  data:  ", backend.DataDir())
		return nil
	},
}
