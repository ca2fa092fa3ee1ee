package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bpybuild/manage/internal/matrix"
	"github.com/bpybuild/manage/internal/setupgen"
	"github.com/bpybuild/manage/internal/versions"
	"github.com/spf13/cobra"
)

var (
	generateBlender   string
	generatePython    string
	generateOutput    string
	generateMatrix    string
	generateOutputDir string
)

func init() {
	generateCmd.Flags().StringVarP(&generateBlender, "blender", "b", "", "Blender version to target")
	generateCmd.Flags().StringVarP(&generatePython, "python", "p", "", "Python version to target")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "setup.py", "Output file ('-' for stdout)")
	generateCmd.Flags().StringVar(&generateMatrix, "matrix", "", "Build matrix file; renders one script per combination")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "d", ".", "Output directory for matrix mode")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the setup.py for a bpy wheel",
	Long: `Render the packaging script that distributes Blender as the "bpy" Python
package. The script pins python_requires to the exact interpreter minor
version, since a bpy binary only ever works with the Python it was built for.

Examples:
  manage generate -b 3.5.1 -p 3.10
  manage generate -b 3.5.1 -p 3.10 -o -
  manage generate --matrix matrix.yaml -d dist/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateMatrix != "" {
			return generateFromMatrix(generateMatrix, generateOutputDir)
		}

		if generateBlender == "" || generatePython == "" {
			return fmt.Errorf("--blender and --python are required (or use --matrix)")
		}
		return generateOne(generateBlender, generatePython, generateOutput)
	},
}

// generateOne renders a single script and writes it to path ("-" for stdout).
func generateOne(blender, python, path string) error {
	text, err := renderScript(blender, python)
	if err != nil {
		return err
	}

	if path == "-" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (bpy %s, python %s)\n", path, blender, python)
	return nil
}

// generateFromMatrix renders one script per build combination in the matrix.
func generateFromMatrix(matrixPath, outDir string) error {
	m, err := matrix.Load(matrixPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	for _, pair := range m.Pairs() {
		text, err := renderScript(pair.Blender, pair.Python)
		if err != nil {
			return fmt.Errorf("rendering %s/py%s: %w", pair.Blender, pair.Python, err)
		}

		name := fmt.Sprintf("setup-%s-py%s.py", pair.Blender, pair.Python)
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

// renderScript validates the versions and renders the setup script text.
func renderScript(blender, python string) (string, error) {
	parsed, err := versions.ParseBlender(blender)
	if err != nil {
		return "", err
	}
	if err := versions.ParsePython(python); err != nil {
		return "", err
	}

	return setupgen.Render(setupgen.BuildConfig{
		BlenderVersion: parsed.String(),
		PythonVersion:  python,
	})
}
