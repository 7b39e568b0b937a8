package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

// versionString assembles the full version report printed by the
// version subcommand.
func versionString() string {
	return fmt.Sprintf("ecomdash version %s\nBuilt at: %s\n%s %s/%s\n",
		Version, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display ecomdash version information",
	Long:  `Display the current version of ecomdash along with build information.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(versionString())
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.AddCommand(versionCmd)
}
