package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeevibe/jeevibe/internal/auth"
	"github.com/jeevibe/jeevibe/internal/backend"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version and check server compatibility",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("jeevibe", version)

		client, err := backend.NewHTTPClient(backend.ConfigFromEnv(), &auth.StaticTokenProvider{})
		if err != nil {
			return
		}
		h, err := client.Health(cmd.Context())
		if err != nil {
			return
		}
		if err := backend.CheckCompatibility(h, version); err != nil {
			fmt.Println(err)
			return
		}
		if h.MinClientVersion != "" {
			fmt.Println("Server minimum:", h.MinClientVersion, "(compatible)")
		}
	},
}
