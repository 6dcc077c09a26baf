package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FrogSnot/HardBore/internal/index"
)

var indexMaxDepth int

var indexCmd = &cobra.Command{
	Use:   "index <path>",
	Short: "Crawl path and ingest it into the search index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := index.Open(dataDir)
		if err != nil {
			return err
		}
		defer idx.Close()

		// IndexDirectory publishes IsRunning=true before it returns, so
		// polling can start at once.
		idx.IndexDirectory(args[0], indexMaxDepth)

		for {
			status := idx.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "\rindexed=%d elapsed=%dms", status.IndexedCount, status.ElapsedMs)
			if !status.IsRunning {
				break
			}
			time.Sleep(200 * time.Millisecond)
		}
		fmt.Fprintln(cmd.OutOrStdout())

		return nil
	},
}

func init() {
	indexCmd.Flags().IntVar(&indexMaxDepth, "max-depth", -1, "maximum recursion depth (-1 for unbounded)")
}
