package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	omml "github.com/doctex/go-omml"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.docx|file.xml>",
	Short: "Convert the equations in a document to LaTeX",
	Long: `Convert extracts every OMML equation from a .docx archive (or reads a raw
OMML XML fragment) and prints the LaTeX conversion of each, one per line.
With --wrap each fragment is embedded in $...$ or $$...$$ chosen by length;
with --standalone the output is a complete compilable LaTeX document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		equations, err := readEquations(path)
		if err != nil {
			return err
		}

		slog.Debug("converted equations", "file", path, "count", len(equations))

		out := os.Stdout
		if name := viper.GetString("output"); name != "" {
			f, err := os.Create(name)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		if viper.GetBool("standalone") {
			return omml.WriteDocument(out, equations)
		}

		for _, eq := range equations {
			line := eq.LaTeX
			if viper.GetBool("wrap") {
				line = omml.Wrap(line)
			}

			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}

		return nil
	},
}

// readEquations picks the extraction path by file extension: .docx archives
// go through the zip reader, anything else is treated as raw XML.
func readEquations(path string) ([]omml.Equation, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return omml.ExtractEquations(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return omml.ReadEquations(f)
}

func init() {
	convertCmd.Flags().String("output", "", "write output to file instead of stdout")
	convertCmd.Flags().Bool("standalone", false, "emit a complete LaTeX document")
	convertCmd.Flags().Bool("wrap", false, "wrap each fragment in inline/display math delimiters")

	_ = viper.BindPFlag("output", convertCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("standalone", convertCmd.Flags().Lookup("standalone"))
	_ = viper.BindPFlag("wrap", convertCmd.Flags().Lookup("wrap"))

	rootCmd.AddCommand(convertCmd)
}
