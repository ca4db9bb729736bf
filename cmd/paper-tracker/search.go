package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-tracker/internal/httputil"
	"github.com/pdiddy/paper-tracker/internal/query"
	"github.com/pdiddy/paper-tracker/internal/search"
	"github.com/pdiddy/paper-tracker/pkg/types"
)

const (
	defaultSearchTimeout = 30 * time.Second
	defaultUserAgent     = "paper-tracker/0.1"
	defaultCacheDir      = ".cache"
	defaultPageSize      = 100
	defaultCacheTTL      = time.Hour
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find recent arXiv papers matching a topical query",
	Long: `Search combines free-text keywords with a category bundle, queries the
arXiv API in the requested order, and filters the stream down to papers
published within the recency window. Results for an identical parameter tuple
are cached on disk for an hour.`,
	RunE: runSearch,
}

func init() {
	viper.SetDefault("search.timeout", defaultSearchTimeout)
	viper.SetDefault("search.user_agent", defaultUserAgent)
	viper.SetDefault("search.page_size", defaultPageSize)
	viper.SetDefault("search.cache_ttl", defaultCacheTTL)

	searchCmd.Flags().String("keywords", "", "free-text keyword expression (arXiv query syntax)")
	searchCmd.Flags().String("category", "ai-cs", fmt.Sprintf("category bundle %v", query.Bundles()))
	searchCmd.Flags().Int("days-back", 7, "recency window in days")
	searchCmd.Flags().Int("max-results", 20, "maximum number of results to return")
	searchCmd.Flags().String("sort", "relevance", "ranking criterion: relevance, submitted, or updated")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save results to a YAML result file")
	searchCmd.Flags().Bool("no-cache", false, "bypass the result cache")
	searchCmd.Flags().String("cache-dir", defaultCacheDir, "directory for the result cache")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keywords, _ := cmd.Flags().GetString("keywords")
	if keywords == "" {
		return fmt.Errorf("provide --keywords")
	}
	category, _ := cmd.Flags().GetString("category")
	daysBack, _ := cmd.Flags().GetInt("days-back")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	sortFlag, _ := cmd.Flags().GetString("sort")
	asJSON, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")

	sortCriterion, err := parseSort(sortFlag)
	if err != nil {
		return err
	}

	built, err := query.Build(keywords, category)
	if err != nil {
		return err
	}

	params := types.SearchParams{
		Keywords:    keywords,
		CategoryKey: category,
		Query:       built,
		DaysBack:    daysBack,
		MaxResults:  maxResults,
		Sort:        sortCriterion,
	}
	cfg := searchConfig(cacheDir)

	var cache *search.Cache
	if !noCache {
		cache, err = search.OpenCache(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: result cache unavailable: %v\n", err)
		} else {
			defer cache.Close()
		}
	}

	var records []types.PaperRecord
	cached := false
	if cache != nil {
		records, cached = cache.Get(params)
	}

	if !cached {
		provider := newArxivProvider(cfg)
		records, err = search.Search(cmd.Context(), provider, params, cfg, os.Stderr)
		if err != nil {
			return err
		}
		if cache != nil {
			if err := cache.Put(params, records); err != nil {
				fmt.Fprintf(os.Stderr, "warning: caching results failed: %v\n", err)
			}
		}
	} else {
		fmt.Fprintln(os.Stderr, "(cached)")
	}

	if asJSON {
		if err := search.FormatJSON(records, os.Stdout); err != nil {
			return err
		}
	} else {
		search.FormatTable(records, os.Stdout)
	}

	if outPath != "" {
		if err := search.WriteResultFile(outPath, params, records); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", len(records), outPath)
	}
	return nil
}

// searchConfig assembles the search stage config from viper, which carries
// the defaults plus any config-file or environment overrides.
func searchConfig(cacheDir string) types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		PageSize: viper.GetInt("search.page_size"),
		CacheDir: cacheDir,
		CacheTTL: viper.GetDuration("search.cache_ttl"),
	}
}

// newArxivProvider builds the provider from cfg: page size, request
// timeout, and the identifying User-Agent all flow from the config.
func newArxivProvider(cfg types.SearchConfig) *search.ArxivProvider {
	client := httputil.NewClient(cfg.UserAgent)
	client.Timeout = cfg.Timeout
	return &search.ArxivProvider{Client: client, PageSize: cfg.PageSize}
}

// parseSort maps the CLI flag to the upstream sort criterion.
func parseSort(flag string) (types.SortCriterion, error) {
	switch flag {
	case "relevance":
		return types.SortRelevance, nil
	case "submitted":
		return types.SortSubmittedDate, nil
	case "updated":
		return types.SortLastUpdated, nil
	default:
		return "", fmt.Errorf("unknown sort criterion %q (use relevance, submitted, or updated)", flag)
	}
}
