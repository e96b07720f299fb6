package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uniformkit/shirtmaker/internal/shirt"
	"github.com/uniformkit/shirtmaker/pkg/ribbon"
)

var nametapeCmd = &cobra.Command{
	Use:   "nametape",
	Short: "Render a text nametape onto a template image",
	Long: `Render horizontally centered text onto a nametape template.

The template is either an image file (--template) or a generated blank
transparent canvas of the given size. Text uses a built-in fixed bitmap face
unless a TTF/OTF font file is supplied.

Examples:
  # Render onto a generated blank template
  shirtmaker nametape --text SMITH -o tape.png

  # Render onto an existing template image
  shirtmaker nametape --text SMITH --template olive_tape.png -o tape.png

  # Use a custom pixel font
  shirtmaker nametape --text SMITH --font tiny5.ttf --font-size 5 -o tape.png`,
	RunE: runNametape,
}

func init() {
	rootCmd.AddCommand(nametapeCmd)

	nametapeCmd.Flags().StringP("text", "t", "", "text to place on the nametape (required)")
	nametapeCmd.Flags().String("template", "", "template image file (default: generated blank template)")
	nametapeCmd.Flags().Int("width", shirt.DefaultTapeWidth, "generated template width")
	nametapeCmd.Flags().Int("height", shirt.DefaultTapeHeight, "generated template height")
	nametapeCmd.Flags().String("font", "", "TTF/OTF font file (default: built-in bitmap face)")
	nametapeCmd.Flags().Float64("font-size", shirt.DefaultFontSize, "font size in points for TTF/OTF fonts")
	nametapeCmd.Flags().String("color", "#ffffff", "text color (hex)")
	nametapeCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	viper.BindPFlag("nametape.text", nametapeCmd.Flags().Lookup("text"))
	viper.BindPFlag("nametape.template", nametapeCmd.Flags().Lookup("template"))
	viper.BindPFlag("nametape.width", nametapeCmd.Flags().Lookup("width"))
	viper.BindPFlag("nametape.height", nametapeCmd.Flags().Lookup("height"))
	viper.BindPFlag("nametape.font", nametapeCmd.Flags().Lookup("font"))
	viper.BindPFlag("nametape.font-size", nametapeCmd.Flags().Lookup("font-size"))
	viper.BindPFlag("nametape.color", nametapeCmd.Flags().Lookup("color"))
	viper.BindPFlag("nametape.output", nametapeCmd.Flags().Lookup("output"))
}

func runNametape(cmd *cobra.Command, args []string) error {
	text := viper.GetString("nametape.text")
	if text == "" {
		return fmt.Errorf("nametape text is required (use --text)")
	}

	col, err := ribbon.ParseHexColor(viper.GetString("nametape.color"))
	if err != nil {
		return fmt.Errorf("invalid text color: %v", err)
	}

	opts := &shirt.NametapeOptions{
		Text:         text,
		TemplatePath: viper.GetString("nametape.template"),
		Width:        viper.GetInt("nametape.width"),
		Height:       viper.GetInt("nametape.height"),
		FontPath:     viper.GetString("nametape.font"),
		FontSize:     viper.GetFloat64("nametape.font-size"),
		Color:        col,
	}

	maker := shirt.New(newLogger())
	result, err := maker.Nametape(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return writeOutput(viper.GetString("nametape.output"), result.ImageData, cmd)
}
