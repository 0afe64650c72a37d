package cmd

import (
	"encoding/json"

	"github.com/makedot/makedot/theme"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd prints the JSON schema of the palette configuration, for editor completion and validation.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the palette configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(theme.Schema()))
	},
}
