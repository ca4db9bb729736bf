package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-tracker/internal/favorites"
	"github.com/pdiddy/paper-tracker/internal/reader"
	"github.com/pdiddy/paper-tracker/internal/search"
	"github.com/pdiddy/paper-tracker/internal/summarize"
	"github.com/pdiddy/paper-tracker/pkg/types"
)

var readCmd = &cobra.Command{
	Use:   "read [identifier]",
	Short: "Fetch a paper's full text and optionally summarize it",
	Long: `Read resolves a paper to readable full text: the HTML edition first, the
PDF rendition as a fallback. The paper is named either by its arXiv entry URL
(or bare ID) or by --from/--index into a saved result file.

With --summarize the text is sent to an OpenAI-compatible model for a
five-section reading; --save-summary stores that reading on the matching
favorites record.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().String("pdf-url", "", "direct PDF location (derived from the identifier when omitted)")
	readCmd.Flags().String("from", "", "saved result file to resolve --index against")
	readCmd.Flags().Int("index", 0, "1-based result position in the --from file")
	readCmd.Flags().Int("max-pages", 0, "PDF page cap on the fallback path (default 8)")
	readCmd.Flags().Bool("summarize", false, "produce an AI summary instead of printing the text")
	readCmd.Flags().Bool("save-summary", false, "store the summary on the matching favorites record")
	readCmd.Flags().String("model", "gpt-4o-mini", "model identifier for summarization")
	readCmd.Flags().String("base-url", "", "OpenAI-compatible endpoint (default: api.openai.com)")
	readCmd.Flags().String("api-key", "", "API key (default: OPENAI_API_KEY or .secrets/openai-api-key)")
	readCmd.Flags().String("store", defaultStorePath, "favorites file (for --save-summary)")

	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	identifier, pdfURL, title, err := resolvePaper(cmd, args)
	if err != nil {
		return err
	}

	maxPages, _ := cmd.Flags().GetInt("max-pages")
	r := reader.New(types.ReaderConfig{MaxPages: maxPages})

	result := r.Content(cmd.Context(), identifier, pdfURL)
	if result.Failed() {
		return fmt.Errorf("content extraction failed: %s", result.Text)
	}
	fmt.Fprintf(os.Stderr, "extracted via %s\n", result.Source)

	doSummarize, _ := cmd.Flags().GetBool("summarize")
	if !doSummarize {
		fmt.Fprintln(os.Stdout, result.Text)
		return nil
	}

	cfg := aiConfig(cmd)
	client := summarize.NewClient(cfg)
	summary := summarize.Summarize(cmd.Context(), client, result.Text, title, cfg)
	fmt.Fprintln(os.Stdout, summary)
	if summarize.IsFailure(summary) {
		return fmt.Errorf("summarization failed")
	}

	if save, _ := cmd.Flags().GetBool("save-summary"); save {
		storePath, _ := cmd.Flags().GetString("store")
		store := favorites.NewStore(storePath)
		if err := store.UpdateSummary(identifier, summary); err != nil {
			return fmt.Errorf("saving summary: %w", err)
		}
	}
	return nil
}

// resolvePaper determines the target paper from a positional identifier or a
// saved result file position.
func resolvePaper(cmd *cobra.Command, args []string) (identifier, pdfURL, title string, err error) {
	fromPath, _ := cmd.Flags().GetString("from")
	index, _ := cmd.Flags().GetInt("index")
	pdfURL, _ = cmd.Flags().GetString("pdf-url")

	if fromPath != "" {
		rf, err := search.ReadResultFile(fromPath)
		if err != nil {
			return "", "", "", err
		}
		rec, err := rf.Record(index)
		if err != nil {
			return "", "", "", err
		}
		return rec.Identifier, rec.PDFURL, rec.Title, nil
	}

	if len(args) == 0 {
		return "", "", "", fmt.Errorf("provide an identifier, or --from with --index")
	}
	identifier = canonicalIdentifier(args[0])
	if pdfURL == "" {
		pdfURL = "https://arxiv.org/pdf/" + search.ArxivID(identifier)
	}
	return identifier, pdfURL, identifier, nil
}

// canonicalIdentifier normalizes a bare arXiv ID to the entry-URL form
// that search results carry, so a summary saved from a bare ID lands on
// the favorite saved from a result file.
func canonicalIdentifier(arg string) string {
	if strings.Contains(arg, "/abs/") {
		return arg
	}
	return "http://arxiv.org/abs/" + arg
}

// aiConfig assembles the summarization config from flags, environment, and
// loaded secrets, in that precedence order.
func aiConfig(cmd *cobra.Command) types.AIConfig {
	model, _ := cmd.Flags().GetString("model")
	baseURL, _ := cmd.Flags().GetString("base-url")
	apiKey, _ := cmd.Flags().GetString("api-key")

	if apiKey == "" {
		apiKey = viper.GetString("ai.api_key")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	return types.AIConfig{
		Model:   model,
		BaseURL: baseURL,
		APIKey:  secretDefault("openai-api-key", apiKey),
	}
}
