package cli

import (
	"fmt"

	"github.com/bpybuild/manage/internal/config"
	"github.com/bpybuild/manage/internal/releases"
	"github.com/spf13/cobra"
)

var releasesLimit int

func init() {
	releasesCmd.Flags().IntVar(&releasesLimit, "limit", 10, "Maximum number of releases to list")
	rootCmd.AddCommand(releasesCmd)
}

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "List buildable Blender releases",
	Long: `List Blender release versions from the upstream repository, newest first.
Results are cached for a day; set GITHUB_TOKEN for higher API rate limits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := releases.NewClient(config.Get(config.KeyGitHubRepo), config.Dir())

		vers, err := client.List()
		if err != nil {
			return err
		}

		if len(vers) == 0 {
			fmt.Println("No releases found.")
			return nil
		}

		limit := releasesLimit
		if limit <= 0 || limit > len(vers) {
			limit = len(vers)
		}
		for _, v := range vers[:limit] {
			fmt.Println(v)
		}
		return nil
	},
}
