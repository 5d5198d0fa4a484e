package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aylin/article-stylist/internal/observability"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available editorial formats",
	Long:  "Lists every registered editorial format with its structural rules. Use --format-pack to include custom formats.",
	RunE:  runFormats,
}

var (
	formatsPackFile string
	formatsVerbose  bool
)

func init() {
	formatsCmd.Flags().StringVar(&formatsPackFile, "format-pack", "", "Path to a custom format pack JSON")
	formatsCmd.Flags().BoolVarP(&formatsVerbose, "verbose", "v", false, "Print the full rule set per format")

	rootCmd.AddCommand(formatsCmd)
}

func runFormats(_ *cobra.Command, _ []string) error {
	registry, err := buildRegistry(formatsPackFile)
	if err != nil {
		return err
	}

	specs := registry.List()
	if formatsVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range specs {
			printer.PrintFormatSpec(&specs[i])
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tSUBHEADS\tWORDS")
	for _, spec := range specs {
		words := "unconstrained"
		switch {
		case spec.Rules.MinWords != nil && spec.Rules.MaxWords != nil:
			words = fmt.Sprintf("%d–%d", *spec.Rules.MinWords, *spec.Rules.MaxWords)
		case spec.Rules.MaxWords != nil:
			words = fmt.Sprintf("≤%d", *spec.Rules.MaxWords)
		case spec.Rules.MinWords != nil:
			words = fmt.Sprintf("≥%d", *spec.Rules.MinWords)
		}
		subheads := "no"
		if spec.Rules.AllowSubheads {
			subheads = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", spec.Slug, spec.Name, subheads, words)
	}
	return w.Flush()
}
