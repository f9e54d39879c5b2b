package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [show]",
	Short: "List the episodes a search finds, numbered for --select",
	Args:  cobra.ArbitraryArgs,
	RunE:  listRun,
}

func listRun(cmd *cobra.Command, args []string) error {
	catalog, err := search(cmd.Context(), newSession(), args)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No hits.")
		return nil
	}
	return writeCatalog(os.Stdout, catalog.Sorted())
}
