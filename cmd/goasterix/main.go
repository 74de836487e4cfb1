// goasterix decodes recorded ASTERIX CAT021/CAT048 captures into CSV
// files or a SQLite database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"goasterix/internal/app"
	"goasterix/internal/export"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "goasterix [capture file]",
	Short: "ASTERIX CAT021/CAT048 capture file decoder",
	Long: `goasterix decodes recorded ASTERIX surveillance captures (Categories 021
and 048) into per-category CSV files or a SQLite database, applying the
QNH altitude correction below the transition altitude.

Example usage:
  goasterix capture.ast --csv out.csv --workers 4
  goasterix capture.ast --sqlite out.db --airborne --min-fl 100
  goasterix capture.ast --inspect 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("version") {
			app.ShowVersion()
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("capture file argument required")
		}

		config, err := buildConfig(args[0])
		if err != nil {
			return err
		}

		logger := logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if config.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		return app.NewApplication(config, logger).Run(cmd.Context())
	},
}

// init initializes the CLI flags and configuration
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./goasterix.yaml)")

	rootCmd.Flags().StringP("csv", "o", "", "CSV output base path (written per category)")
	rootCmd.Flags().String("sqlite", "", "SQLite database output path")
	rootCmd.Flags().IntP("workers", "w", app.DefaultWorkers, "parallel decode workers")
	rootCmd.Flags().IntP("inspect", "n", 0, "print the first N decoded records")
	rootCmd.Flags().BoolP("verbose", "v", false, "verbose logging")
	rootCmd.Flags().Bool("version", false, "show version information")

	rootCmd.Flags().Bool("airborne", false, "keep only rows known to be airborne")
	rootCmd.Flags().Bool("ground", false, "keep only rows known to be on ground")
	rootCmd.Flags().Float64("min-fl", -1, "minimum flight level (negative disables)")
	rootCmd.Flags().Float64("max-fl", -1, "maximum flight level (negative disables)")
	rootCmd.Flags().String("callsign", "", "callsign substring filter (case-insensitive)")
	rootCmd.Flags().Float64("min-speed", -1, "minimum ground speed in knots (negative disables)")
	rootCmd.Flags().Float64("max-speed", -1, "maximum ground speed in knots (negative disables)")
	rootCmd.Flags().String("bounds", "", "geographic bounding box latmin,latmax,lonmin,lonmax")
	rootCmd.Flags().Bool("exclude-ground-bit", false, "drop CAT021 rows with the ground bit set")

	setDefaults()

	viper.BindPFlag("output.csv", rootCmd.Flags().Lookup("csv"))
	viper.BindPFlag("output.sqlite", rootCmd.Flags().Lookup("sqlite"))
	viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
	viper.BindPFlag("inspect", rootCmd.Flags().Lookup("inspect"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("version", rootCmd.Flags().Lookup("version"))
	viper.BindPFlag("filter.airborne", rootCmd.Flags().Lookup("airborne"))
	viper.BindPFlag("filter.ground", rootCmd.Flags().Lookup("ground"))
	viper.BindPFlag("filter.min_fl", rootCmd.Flags().Lookup("min-fl"))
	viper.BindPFlag("filter.max_fl", rootCmd.Flags().Lookup("max-fl"))
	viper.BindPFlag("filter.callsign", rootCmd.Flags().Lookup("callsign"))
	viper.BindPFlag("filter.min_speed", rootCmd.Flags().Lookup("min-speed"))
	viper.BindPFlag("filter.max_speed", rootCmd.Flags().Lookup("max-speed"))
	viper.BindPFlag("filter.bounds", rootCmd.Flags().Lookup("bounds"))
	viper.BindPFlag("filter.exclude_ground_bit", rootCmd.Flags().Lookup("exclude-ground-bit"))
}

// setDefaults registers the default value for every configuration knob.
func setDefaults() {
	viper.SetDefault("output.csv", "")
	viper.SetDefault("output.sqlite", "")
	viper.SetDefault("workers", app.DefaultWorkers)
	viper.SetDefault("inspect", 0)
	viper.SetDefault("verbose", false)
	viper.SetDefault("version", false)
	viper.SetDefault("filter.airborne", false)
	viper.SetDefault("filter.ground", false)
	viper.SetDefault("filter.min_fl", -1.0)
	viper.SetDefault("filter.max_fl", -1.0)
	viper.SetDefault("filter.callsign", "")
	viper.SetDefault("filter.min_speed", -1.0)
	viper.SetDefault("filter.max_speed", -1.0)
	viper.SetDefault("filter.bounds", "")
	viper.SetDefault("filter.exclude_ground_bit", false)
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("goasterix")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig assembles the pipeline configuration from viper, which
// layers command line flags over the optional config file.
func buildConfig(inputFile string) (app.Config, error) {
	config := app.Config{
		InputFile:   inputFile,
		CSVBase:     viper.GetString("output.csv"),
		SQLitePath:  viper.GetString("output.sqlite"),
		Workers:     viper.GetInt("workers"),
		Inspect:     viper.GetInt("inspect"),
		Verbose:     viper.GetBool("verbose"),
		ShowVersion: viper.GetBool("version"),
	}

	config.Filters = export.Filters{
		Airborne:         viper.GetBool("filter.airborne"),
		Ground:           viper.GetBool("filter.ground"),
		Callsign:         viper.GetString("filter.callsign"),
		ExcludeGroundBit: viper.GetBool("filter.exclude_ground_bit"),
	}
	if config.Filters.Airborne && config.Filters.Ground {
		return app.Config{}, fmt.Errorf("--airborne and --ground are mutually exclusive")
	}
	if v := viper.GetFloat64("filter.min_fl"); v >= 0 {
		config.Filters.MinFL = &v
	}
	if v := viper.GetFloat64("filter.max_fl"); v >= 0 {
		config.Filters.MaxFL = &v
	}
	if v := viper.GetFloat64("filter.min_speed"); v >= 0 {
		config.Filters.MinSpeedKt = &v
	}
	if v := viper.GetFloat64("filter.max_speed"); v >= 0 {
		config.Filters.MaxSpeedKt = &v
	}

	if spec := viper.GetString("filter.bounds"); spec != "" {
		box, err := parseBounds(spec)
		if err != nil {
			return app.Config{}, err
		}
		config.Filters.Bounds = box
	}

	return config, nil
}

// parseBounds parses "latmin,latmax,lonmin,lonmax" into a bounding box.
func parseBounds(spec string) (*export.Box, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("bounds must be latmin,latmax,lonmin,lonmax, got %q", spec)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bounds value %q: %w", p, err)
		}
		vals[i] = v
	}
	box := &export.Box{LatMin: vals[0], LatMax: vals[1], LonMin: vals[2], LonMax: vals[3]}
	if box.LatMin > box.LatMax || box.LonMin > box.LonMax {
		return nil, fmt.Errorf("bounds minimum exceeds maximum in %q", spec)
	}
	return box, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
