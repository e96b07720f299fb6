package cmd

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uniformkit/shirtmaker/internal/shirt"
	"github.com/uniformkit/shirtmaker/pkg/ribbon"
)

const version = "1.0.0"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shirtmaker",
	Short: "Compose ribbon racks and nametapes onto garment images",
	Long: `shirtmaker arranges ribbon (badge) images into the regular rack layout and
places the finished rack onto a blank shirt canvas.

Ribbons are read as PNG files from an assets directory (searched recursively)
and composed in path order. Output is written as PNG.

Examples:
  # Compose every ribbon under ./ribbons onto a shirt
  shirtmaker --assets ./ribbons -o shirt.png

  # Place the rack with its bottom-left corner at (23,96)
  shirtmaker --assets ./ribbons --anchor-x 23 --anchor-y 96 --align-bottom -o shirt.png

  # Pick specific ribbons in wear order, two per row
  shirtmaker --assets ./ribbons -r service.png -r commendation.png --per-row 2 -o shirt.png

  # Render a nametape
  shirtmaker nametape --text SMITH -o tape.png

  # Start HTTP server
  shirtmaker serve --port 8080`,
	// If no assets directory is given, show help instead of composing an
	// empty shirt.
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("assets") == "" {
			return cmd.Help()
		}
		return runCompose(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.shirtmaker.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	// Composition flags
	rootCmd.Flags().StringP("assets", "a", "", "directory containing ribbon PNGs (required)")
	rootCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringSliceP("ribbon", "r", []string{}, "ribbon file(s) relative to the assets dir, in wear order (default: all, sorted)")

	// Grid options
	rootCmd.Flags().Int("tile-width", ribbon.DefaultTileWidth, "ribbon width in pixels")
	rootCmd.Flags().Int("tile-height", ribbon.DefaultTileHeight, "ribbon height in pixels")
	rootCmd.Flags().Int("per-row", ribbon.DefaultPerRow, "maximum ribbons per row")
	rootCmd.Flags().String("border", "#505050", "cell border color (hex)")

	// Placement options
	rootCmd.Flags().Int("anchor-x", 0, "x coordinate of the rack anchor on the shirt")
	rootCmd.Flags().Int("anchor-y", 0, "y coordinate of the rack anchor on the shirt")
	rootCmd.Flags().Bool("align-bottom", false, "treat the anchor as the rack's bottom-left corner")

	// Bind flags to viper for root command
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("assets", rootCmd.Flags().Lookup("assets"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("ribbon", rootCmd.Flags().Lookup("ribbon"))
	viper.BindPFlag("tile-width", rootCmd.Flags().Lookup("tile-width"))
	viper.BindPFlag("tile-height", rootCmd.Flags().Lookup("tile-height"))
	viper.BindPFlag("per-row", rootCmd.Flags().Lookup("per-row"))
	viper.BindPFlag("border", rootCmd.Flags().Lookup("border"))
	viper.BindPFlag("anchor-x", rootCmd.Flags().Lookup("anchor-x"))
	viper.BindPFlag("anchor-y", rootCmd.Flags().Lookup("anchor-y"))
	viper.BindPFlag("align-bottom", rootCmd.Flags().Lookup("align-bottom"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".shirtmaker" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shirtmaker")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runCompose(cmd *cobra.Command, args []string) error {
	border, err := ribbon.ParseHexColor(viper.GetString("border"))
	if err != nil {
		return fmt.Errorf("invalid border color: %v", err)
	}

	opts := &shirt.ComposeOptions{
		AssetsDir: viper.GetString("assets"),
		Ribbons:   viper.GetStringSlice("ribbon"),
		Grid: ribbon.GridOptions{
			TileWidth:   viper.GetInt("tile-width"),
			TileHeight:  viper.GetInt("tile-height"),
			PerRow:      viper.GetInt("per-row"),
			BorderColor: border,
		},
		Anchor:   image.Pt(viper.GetInt("anchor-x"), viper.GetInt("anchor-y")),
		AlignTop: !viper.GetBool("align-bottom"),
	}

	maker := shirt.New(newLogger())
	result, err := maker.Compose(cmd.Context(), opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Composed %d ribbons onto a %dx%d shirt\n",
		result.RibbonCount, result.Width, result.Height)

	return writeOutput(viper.GetString("output"), result.ImageData, cmd)
}

// writeOutput writes PNG data to the given file, or to stdout when path is
// empty and stdout is not a terminal.
func writeOutput(path string, data []byte, cmd *cobra.Command) error {
	if path == "" {
		if stat, _ := os.Stdout.Stat(); (stat.Mode() & os.ModeCharDevice) != 0 {
			return fmt.Errorf("didn't specify output file and standard output is a terminal")
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %v", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Output PNG: %s\n", path)
	return nil
}
