package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var scansCmd = &cobra.Command{
	Use:   "scans",
	Short: "Inspect scan history",
}

var scansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scans",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		limit, _ := cmd.Flags().GetInt("limit")
		scans, err := st.ListScans(ctx, limit)
		if err != nil {
			return eris.Wrap(err, "scans list")
		}

		if len(scans) == 0 {
			fmt.Fprintln(os.Stderr, "No scans found.")
			return nil
		}

		formatScansList(os.Stdout, scans)
		return nil
	},
}

var scansShowCmd = &cobra.Command{
	Use:   "show <scan-id>",
	Short: "Show the full intelligence record of a scan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		scan, err := st.GetScan(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "scans show")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scan)
	},
}

func formatScansList(w io.Writer, scans []model.Scan) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tURL\tSTATUS\tPAGES\tCREATED")
	for _, s := range scans {
		pages := 0
		if s.Intelligence != nil {
			pages = s.Intelligence.PagesScanned
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			s.ID, s.URL, s.Status, pages, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func init() {
	scansListCmd.Flags().Int("limit", 50, "max number of scans to display")

	scansCmd.AddCommand(scansListCmd)
	scansCmd.AddCommand(scansShowCmd)
	rootCmd.AddCommand(scansCmd)
}
