package main

import (
	"errors"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flux-imaging/prospect-cli/internal/intel"
	"github.com/flux-imaging/prospect-cli/internal/model"
	"github.com/flux-imaging/prospect-cli/internal/playbook"
	"github.com/flux-imaging/prospect-cli/internal/store"
	"github.com/flux-imaging/prospect-cli/pkg/anthropic"
)

var (
	playbookURL      string
	playbookLocation string
	playbookFormat   string
	playbookOut      string
	playbookMaxPages int
	playbookCached   bool
)

var playbookCmd = &cobra.Command{
	Use:   "playbook <facility-name>",
	Short: "Generate a sales playbook for a facility",
	Long:  "Scans the facility website (or reuses the latest saved scan), then generates playbook sections via Claude and saves the result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Anthropic.Key == "" {
			return eris.New("anthropic key is required (PROSPECT_ANTHROPIC_KEY)")
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		facility := model.Facility{
			Name:     args[0],
			Location: playbookLocation,
			Website:  playbookURL,
		}

		var result *model.WebsiteIntelligence
		if playbookURL != "" {
			result, err = intelligenceFor(cmd, st, facility)
			if err != nil {
				return err
			}
		}

		builder := playbook.NewBuilder(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic)
		pb, err := builder.Generate(ctx, facility, result)
		if err != nil {
			return eris.Wrap(err, "generate playbook")
		}

		if err := st.SavePlaybook(ctx, pb); err != nil {
			return eris.Wrap(err, "save playbook")
		}
		zap.L().Info("playbook saved", zap.String("playbook_id", pb.ID))

		return writePlaybook(pb, playbookFormat, playbookOut)
	},
}

// intelligenceFor reuses the latest saved scan for the URL when --use-cached
// is set, falling back to a fresh scan.
func intelligenceFor(cmd *cobra.Command, st store.Store, facility model.Facility) (*model.WebsiteIntelligence, error) {
	ctx := cmd.Context()

	if playbookCached {
		cleaned := intel.CleanURL(facility.Website)
		scan, err := st.GetLatestScanByURL(ctx, cleaned)
		if err == nil {
			zap.L().Info("using cached scan",
				zap.String("scan_id", scan.ID),
				zap.Time("scanned_at", scan.CreatedAt),
			)
			return scan.Intelligence, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, eris.Wrap(err, "load cached scan")
		}
		zap.L().Info("no cached scan found, scanning", zap.String("url", cleaned))
	}

	scanner := intel.NewScanner(cfg.Scan, intel.NewStaticDirectory())
	result := scanner.ScanFacility(ctx, facility, playbookMaxPages)

	if _, err := st.SaveScan(ctx, result); err != nil {
		return nil, eris.Wrap(err, "save scan")
	}
	return result, nil
}

func writePlaybook(pb *model.Playbook, format, outPath string) error {
	var out []byte
	var err error
	switch format {
	case "markdown", "md", "":
		out = []byte(playbook.ExportMarkdown(pb))
	case "json":
		out, err = playbook.ExportJSON(pb)
	case "yaml":
		out, err = playbook.ExportYAML(pb)
	default:
		return eris.Errorf("unknown format %q (markdown, json, yaml)", format)
	}
	if err != nil {
		return err
	}

	if outPath != "" {
		return eris.Wrap(os.WriteFile(outPath, out, 0o644), "write playbook file")
	}
	_, err = os.Stdout.Write(out)
	return err
}

func init() {
	playbookCmd.Flags().StringVar(&playbookURL, "url", "", "facility website URL")
	playbookCmd.Flags().StringVar(&playbookLocation, "location", "", "facility location (City, ST)")
	playbookCmd.Flags().StringVar(&playbookFormat, "format", "markdown", "output format (markdown, json, yaml)")
	playbookCmd.Flags().StringVar(&playbookOut, "out", "", "write output to file instead of stdout")
	playbookCmd.Flags().IntVar(&playbookMaxPages, "max-pages", 0, "max pages to scan (default from config)")
	playbookCmd.Flags().BoolVar(&playbookCached, "use-cached", false, "reuse the latest saved scan for this URL")
	rootCmd.AddCommand(playbookCmd)
}
