// Package main is the entry point for the omml2latex CLI, a thin shell
// around the converter library: it reads .docx or raw OMML XML files and
// prints the LaTeX conversions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "omml2latex",
	Short: "Convert Office math markup to LaTeX",
	Long: `omml2latex converts the OMML equations embedded in Office documents into
LaTeX source. Input is a .docx archive or a raw OMML XML fragment; output is
one LaTeX fragment per equation, optionally wrapped in math delimiters or
assembled into a standalone document.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the omml2latex version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	viper.SetEnvPrefix("OMML2LATEX")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
