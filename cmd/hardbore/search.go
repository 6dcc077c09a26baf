package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FrogSnot/HardBore/internal/index"
)

var (
	searchFuzzy bool
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Query the search index, FTS first with a fuzzy fallback when FTS finds nothing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := index.Open(dataDir)
		if err != nil {
			return err
		}
		defer idx.Close()

		ctx := cmd.Context()
		query := args[0]

		var results []index.SearchResult
		switch {
		case searchFuzzy:
			results = idx.SearchFuzzy(ctx, query, searchLimit)
		default:
			results = idx.Search(ctx, query, searchLimit)
		}

		for _, r := range results {
			kind := "file"
			if r.IsDir {
				kind = "dir"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tscore=%d\n", kind, r.Name, r.Path, r.Score)
		}

		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchFuzzy, "fuzzy", false, "force the fuzzy matcher instead of the hybrid FTS-first policy")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 50, "maximum number of results")
}
