package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aylin/article-stylist/internal/generate"
	"github.com/aylin/article-stylist/internal/llm"
	"github.com/aylin/article-stylist/internal/server"
	"github.com/aylin/article-stylist/internal/translate"
)

var (
	serveAddr        string
	serveFormatPack  string
	serveModel       string
	serveMaxAttempts int
	serveTranslation bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generating articles from source material.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveFormatPack, "format-pack", "", "Path to a custom format pack JSON")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Model override")
	serveCmd.Flags().IntVar(&serveMaxAttempts, "max-attempts", 0, "Regeneration attempt budget")
	serveCmd.Flags().BoolVar(&serveTranslation, "translation", false, "Enable translate_from via Google Cloud Translation")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	registry, err := buildRegistry(serveFormatPack)
	if err != nil {
		return err
	}

	ctx := context.Background()

	llmConfig := llm.DefaultConfig()
	if serveModel != "" {
		llmConfig = llmConfig.WithModel(serveModel)
	}
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	var translator translate.Translator
	if serveTranslation {
		translator, err = translate.NewGoogleTranslator(ctx, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if err != nil {
			return fmt.Errorf("failed to create translator: %w", err)
		}
	} else {
		log.Println("Translation disabled; translate_from requests will be rejected")
	}

	controller := generate.NewController(generate.NewLLMDraftGenerator(client), serveMaxAttempts)

	srv, err := server.New(server.Config{
		Addr:       serveAddr,
		Registry:   registry,
		Controller: controller,
		Translator: translator,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
