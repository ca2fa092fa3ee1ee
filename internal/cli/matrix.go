package cli

import (
	"fmt"

	"github.com/bpybuild/manage/internal/matrix"
	"github.com/spf13/cobra"
)

func init() {
	matrixCmd.AddCommand(matrixValidateCmd)
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Work with build matrix files",
	Long:  `Inspect and validate the YAML files that list Blender/Python build combinations.`,
}

var matrixValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a build matrix file against its schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		result, err := matrix.ValidateFile(path)
		if err != nil {
			return err
		}

		if !result.Valid {
			fmt.Printf("%s is invalid:\n", path)
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				fmt.Printf("  - %s\n", msg)
			}
			return fmt.Errorf("%d validation issue(s)", len(result.Issues))
		}

		m, err := matrix.Load(path)
		if err != nil {
			return err
		}
		fmt.Printf("%s is valid (%d build combinations)\n", path, len(m.Pairs()))
		return nil
	},
}
