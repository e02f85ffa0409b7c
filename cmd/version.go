package cmd

import (
	"github.com/spf13/cobra"
	"github.com/termninja/termninja/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Args:  cobra.NoArgs,
	Short: "Print the version of termninja",
	// the version needs no client setup
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("termninja %s\n", version.GetVersion())
	},
	Annotations: map[string]string{
		"group": string(subCommandGroupAdvanced),
		"order": "10",
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
