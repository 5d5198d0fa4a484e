package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aylin/article-stylist/internal/config"
	"github.com/aylin/article-stylist/internal/formats"
	"github.com/aylin/article-stylist/internal/generate"
	"github.com/aylin/article-stylist/internal/llm"
	"github.com/aylin/article-stylist/internal/observability"
	"github.com/aylin/article-stylist/internal/translate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an article from source material",
	Long:  "Generates a Turkish article in the chosen editorial format: drafts via the LLM, rewrites to the format's structural rules, validates, and regenerates on short drafts.",
	RunE:  runGenerate,
}

var (
	generateSourceFile  string
	generateFormat      string
	generateOutputFile  string
	generateFormatPack  string
	generateAPIKey      string
	generateModel       string
	generateSourceLang  string
	generateMaxAttempts int
	generateVerbose     bool
	generateConfigFile  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateSourceFile, "source", "s", "", "Path to source material text file (required)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Format slug, e.g. hard_news (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to write the article to (defaults to stdout)")
	generateCmd.Flags().StringVar(&generateFormatPack, "format-pack", "", "Path to a custom format pack JSON")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "Model override")
	generateCmd.Flags().StringVar(&generateSourceLang, "source-lang", "", "Source language to translate from (empty means Turkish)")
	generateCmd.Flags().IntVar(&generateMaxAttempts, "max-attempts", 0, "Regeneration attempt budget")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print format rules and validation details")
	generateCmd.Flags().StringVar(&generateConfigFile, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Source:      generateSourceFile,
		Format:      generateFormat,
		Output:      generateOutputFile,
		FormatPack:  generateFormatPack,
		APIKey:      generateAPIKey,
		Model:       generateModel,
		SourceLang:  generateSourceLang,
		MaxAttempts: generateMaxAttempts,
		Verbose:     generateVerbose,
	}
	if generateConfigFile != "" {
		fileCfg, err := config.LoadConfig(generateConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Source == "" {
		return fmt.Errorf("source file is required (use --source or the config file)")
	}
	if cfg.Format == "" {
		return fmt.Errorf("format is required (use --format or the config file)")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	sourceBytes, err := os.ReadFile(cfg.Source)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}
	sourceText := string(sourceBytes)

	registry, err := buildRegistry(cfg.FormatPack)
	if err != nil {
		return err
	}
	spec, err := registry.Get(cfg.Format)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintFormatSpec(&spec)
	}

	ctx := context.Background()

	if cfg.SourceLang != "" && cfg.SourceLang != translate.DefaultTargetLang {
		translator, err := translate.NewGoogleTranslator(ctx, cfg.Credentials)
		if err != nil {
			return err
		}
		defer translator.Close()

		sourceText, err = translator.Translate(ctx, sourceText, cfg.SourceLang, translate.DefaultTargetLang)
		if err != nil {
			return err
		}
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	controller := generate.NewController(generate.NewLLMDraftGenerator(client), cfg.MaxAttempts)
	result, err := controller.Run(ctx, generate.Request{
		Spec:       spec,
		SourceText: sourceText,
		ContentID:  uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintReport(result.Report)
		printer.PrintOutcome(result)
	}
	if result.BelowMinimum {
		fmt.Fprintf(os.Stderr, "Warning: delivered best attempt below the format's word minimum (%d words after %d attempts)\n",
			result.Report.WordCount, result.Attempts)
	}

	if cfg.Output == "" {
		fmt.Println(result.Text)
		return nil
	}

	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, []byte(result.Text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// buildRegistry loads the built-in formats plus an optional custom pack.
func buildRegistry(packPath string) (*formats.Registry, error) {
	registry := formats.NewRegistry()
	if packPath != "" {
		if err := registry.LoadFile(packPath); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
