package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/version"
)

// VersionCmd prints the generator version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the modkit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("modkit %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
	},
}
