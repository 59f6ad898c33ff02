package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pedidocalc/internal/utils"
	"pedidocalc/pkg/catalog"
	"pedidocalc/pkg/dataio"
	"pedidocalc/pkg/order"
	"pedidocalc/pkg/report"
)

// run is the whole pipeline: load both inputs, resolve the catalog, enrich
// the order, print, optionally export. Any fatal error aborts before output
// is written.
func run(cmd *cobra.Command, _ []string) error {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	orderPath, _ := cmd.Flags().GetString("order")

	policy, err := catalog.ParsePolicy(viper.GetString("dedup"))
	if err != nil {
		return err
	}

	entries, err := dataio.ReadCatalog(catalogPath)
	if err != nil {
		return err
	}
	utils.Log.Debugf("loaded %d catalog rows from %s", len(entries), catalogPath)

	resolved, err := catalog.Resolve(entries, policy)
	if err != nil {
		return err
	}
	utils.Log.Debugf("catalog resolved to %d unique products (policy %s)", len(resolved), policy)

	lines, err := dataio.ReadOrder(orderPath)
	if err != nil {
		return err
	}
	utils.Log.Debugf("loaded %d order lines from %s", len(lines), orderPath)

	enriched, summary, unmatched := order.Enrich(lines, resolved)
	if len(unmatched) > 0 {
		utils.Log.Warnf("%d order products not found in catalog", len(unmatched))
	}

	report.PrintSummary(os.Stdout, summary)
	report.PrintDetail(os.Stdout, enriched)
	report.PrintUnmatched(os.Stdout, unmatched)

	if viper.GetBool("export") {
		prefix, err := dataio.Export(".", enriched, summary, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("\n[OK] Archivos exportados con prefijo: %s (.csv/.xlsx)\n", prefix)
	}
	return nil
}
