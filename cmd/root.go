package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pedidocalc/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the whole tool: a single-purpose profit calculator for an
// order batch against a price catalog.
var rootCmd = &cobra.Command{
	Use:   "pedidocalc",
	Short: "Computes per-line and total profit for an order batch against a product catalog.",
	Long: `pedidocalc joins an order CSV against the PERFUMES sheet of a price
catalog workbook, collapses duplicated catalog products by normalized name
under a selectable policy, and prints revenue, cost, profit and margin per
order line plus the order totals.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pedidocalc.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")

	rootCmd.Flags().String("catalog", "", "XLSX workbook with a PERFUMES sheet (columns: producto, precio compra, precio venta)")
	rootCmd.Flags().String("order", "", "CSV with columns: producto,cantidad,descuento_% (descuento 0..1)")
	rootCmd.Flags().String("dedup", "first", "Policy for duplicated catalog products: first, max_venta, min_costo or avg")
	rootCmd.Flags().Bool("export", false, "Write detail/summary CSV files and a combined XLSX to the working directory")
	_ = rootCmd.MarkFlagRequired("catalog")
	_ = rootCmd.MarkFlagRequired("order")

	_ = viper.BindPFlag("dedup", rootCmd.Flags().Lookup("dedup"))
	_ = viper.BindPFlag("export", rootCmd.Flags().Lookup("export"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".pedidocalc")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.pedidocalc.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	viper.SetDefault("dedup", "first")
	viper.SetDefault("export", false)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
