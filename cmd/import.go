package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flux-imaging/prospect-cli/internal/importer"
)

var importFilePath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import target facilities from an XLSX or CSV file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		facilities, err := importer.ReadFacilities(importFilePath)
		if err != nil {
			return eris.Wrap(err, "read facilities")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		for i := range facilities {
			if err := st.SaveFacility(ctx, &facilities[i]); err != nil {
				return eris.Wrapf(err, "save facility %q", facilities[i].Name)
			}
		}

		zap.L().Info("import complete",
			zap.Int("facilities", len(facilities)),
			zap.String("file", importFilePath),
		)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFilePath, "file", "", "path to XLSX or CSV file (required)")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}
