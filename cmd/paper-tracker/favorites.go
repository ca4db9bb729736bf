package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-tracker/internal/favorites"
	"github.com/pdiddy/paper-tracker/internal/search"
	"github.com/pdiddy/paper-tracker/pkg/types"
)

const defaultStorePath = "favorites.json"

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage the saved-papers collection",
	Long: `Favorites keeps a personal collection of saved papers with tags and
notes, persisted as a single JSON file. Records are listed most recently
saved first.`,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved papers, optionally filtered by tag",
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a paper from a result file into the collection",
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove [identifier]",
	Short: "Remove a saved paper",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesTagCmd = &cobra.Command{
	Use:   "tag [identifier]",
	Short: "Set a saved paper's tags and notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesTag,
}

var favoritesTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag in use",
	RunE:  runFavoritesTags,
}

func init() {
	favoritesCmd.PersistentFlags().String("store", defaultStorePath, "favorites file")

	favoritesListCmd.Flags().String("tag", "", "only show papers carrying this tag")
	favoritesListCmd.Flags().Bool("json", false, "output records as JSON")

	favoritesAddCmd.Flags().String("from", "", "saved result file")
	favoritesAddCmd.Flags().Int("index", 0, "1-based result position in the --from file")

	favoritesTagCmd.Flags().String("tags", "", "comma-delimited tags (replaces existing tags)")
	favoritesTagCmd.Flags().String("notes", "", "free-form notes (replaces existing notes)")

	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesTagCmd, favoritesTagsCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func openStore(cmd *cobra.Command) *favorites.Store {
	path, _ := cmd.Flags().GetString("store")
	return favorites.NewStore(path)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)

	records, err := store.Load()
	if err != nil {
		if errors.Is(err, favorites.ErrCorrupt) {
			fmt.Fprintf(os.Stderr, "warning: %v; treating collection as empty\n", err)
		} else {
			return err
		}
	}

	if tag, _ := cmd.Flags().GetString("tag"); tag != "" {
		records = filterByTag(records, tag)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(records, os.Stdout)
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "No saved papers.")
		return nil
	}
	for _, rec := range records {
		line := fmt.Sprintf("%s  %s", rec.Published.Format("2006-01-02"), rec.Title)
		if len(rec.Tags) > 0 {
			line += "  [" + strings.Join(rec.Tags, ", ") + "]"
		}
		fmt.Fprintln(os.Stdout, line)
		fmt.Fprintf(os.Stdout, "    %s\n", rec.Identifier)
		if rec.Notes != "" {
			fmt.Fprintf(os.Stdout, "    notes: %s\n", rec.Notes)
		}
	}
	fmt.Fprintf(os.Stdout, "\n%d saved papers\n", len(records))
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	fromPath, _ := cmd.Flags().GetString("from")
	index, _ := cmd.Flags().GetInt("index")
	if fromPath == "" {
		return fmt.Errorf("provide --from with --index")
	}

	rf, err := search.ReadResultFile(fromPath)
	if err != nil {
		return err
	}
	rec, err := rf.Record(index)
	if err != nil {
		return err
	}

	store := openStore(cmd)
	if err := store.Save(rec); err != nil {
		if errors.Is(err, favorites.ErrDuplicate) {
			fmt.Fprintf(os.Stderr, "already saved: %s\n", rec.Identifier)
			return nil
		}
		return err
	}
	fmt.Fprintf(os.Stderr, "saved: %s\n", rec.Title)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)
	if err := store.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "removed: %s\n", args[0])
	return nil
}

func runFavoritesTag(cmd *cobra.Command, args []string) error {
	tagsInput, _ := cmd.Flags().GetString("tags")
	notes, _ := cmd.Flags().GetString("notes")

	store := openStore(cmd)
	return store.UpdateTagsAndNotes(args[0], favorites.ParseTags(tagsInput), notes)
}

func runFavoritesTags(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)
	tags, err := store.AllTags()
	if err != nil {
		return err
	}
	for _, t := range tags {
		fmt.Fprintln(os.Stdout, t)
	}
	return nil
}

func filterByTag(records []types.PaperRecord, tag string) []types.PaperRecord {
	var out []types.PaperRecord
	for _, rec := range records {
		for _, t := range rec.Tags {
			if t == tag {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
