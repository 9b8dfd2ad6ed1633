package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/flux-imaging/prospect-cli/internal/intel"
	"github.com/flux-imaging/prospect-cli/internal/model"
)

var (
	scanMaxPages int
	scanFormat   string
	scanSave     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Scan a facility website for imaging IT intelligence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		scanner := intel.NewScanner(cfg.Scan, intel.NewStaticDirectory())
		result := scanner.ScanWebsite(ctx, args[0], scanMaxPages)

		if scanSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			scan, err := st.SaveScan(ctx, result)
			if err != nil {
				return eris.Wrap(err, "save scan")
			}
			zap.L().Info("scan saved",
				zap.String("scan_id", scan.ID),
				zap.String("status", string(scan.Status)),
			)
		}

		return writeIntelligence(result, scanFormat)
	},
}

func writeIntelligence(result *model.WebsiteIntelligence, format string) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return eris.Wrap(err, "marshal yaml")
		}
		_, err = os.Stdout.Write(out)
		return err
	case "summary":
		printSummary(result)
		return nil
	default:
		return eris.Errorf("unknown format %q (json, yaml, summary)", format)
	}
}

func printSummary(r *model.WebsiteIntelligence) {
	fmt.Printf("URL:               %s\n", r.URL)
	fmt.Printf("Pages scanned:     %d\n", r.PagesScanned)
	if r.Error != "" {
		fmt.Printf("Error:             %s\n", r.Error)
	}
	fmt.Printf("PACS vendor:       %s\n", r.TechnologyStack.PACSVendor)
	fmt.Printf("RIS vendor:        %s\n", r.TechnologyStack.RISVendor)
	fmt.Printf("EMR system:        %s\n", r.TechnologyStack.EMRSystem)
	fmt.Printf("Locations:         %d\n", r.LocationCount)
	fmt.Printf("Est. study volume: %d/year\n", r.AnnualStudyVolume)
	fmt.Printf("Pain points:       %d\n", len(r.PainPoints))
	fmt.Printf("Growth signals:    %d\n", len(r.GrowthIndicators))
	fmt.Printf("Job openings:      %d\n", len(r.JobOpenings))
	fmt.Printf("Key personnel:     %d\n", len(r.KeyPersonnel))
}

func init() {
	scanCmd.Flags().IntVar(&scanMaxPages, "max-pages", 0, "max pages to scan (default from config)")
	scanCmd.Flags().StringVar(&scanFormat, "format", "json", "output format (json, yaml, summary)")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "persist the scan to the store")
	rootCmd.AddCommand(scanCmd)
}
