// Package main provides the CLI entry point for deckhand.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slidewright/deckhand/pkg/deckhand"
	"github.com/slidewright/deckhand/pkg/deckhand/models"
	"github.com/slidewright/deckhand/pkg/deckhand/output"
)

var (
	configPath string
	debug      bool

	// show flags
	asJSON   bool
	pretty   bool
	xlsxPath string
	csvSlide int

	// update flags
	outputPath     string
	titleSlide     int
	titleText      string
	attribution    string
	cellSlide      int
	cellRow        int
	cellCol        int
	cellText       string
	sectionSlide   int
	sectionTitle   string
	sectionSummary string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deckhand",
		Short: "Inspect and update slide-deck presentations",
		Long: `deckhand builds a structural model of a PPTX presentation, classifies
slides into roles (section header, summary), extracts tables, and applies
targeted edits that are written back to the container.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	showCmd := &cobra.Command{
		Use:   "show [input.pptx]",
		Short: "Show presentation metadata and extracted tables",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	showCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	showCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Export all extracted tables to an Excel workbook")
	showCmd.Flags().IntVar(&csvSlide, "csv", -1, "Write the given slide's tables as CSV to stdout")

	updateCmd := &cobra.Command{
		Use:   "update [input.pptx]",
		Short: "Update the title slide (and optionally cells and sections), then save",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}
	updateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_update.pptx)")
	updateCmd.Flags().IntVar(&titleSlide, "slide", 0, "Index of the title slide to update")
	updateCmd.Flags().StringVar(&titleText, "title", "", "Title text (default: Weekly Update with today's date)")
	updateCmd.Flags().StringVar(&attribution, "attribution", "", "Attribution text (default from config)")
	updateCmd.Flags().IntVar(&cellSlide, "cell-slide", -1, "Slide index for a table cell update")
	updateCmd.Flags().IntVar(&cellRow, "cell-row", -1, "Row index for a table cell update")
	updateCmd.Flags().IntVar(&cellCol, "cell-col", -1, "Column index for a table cell update")
	updateCmd.Flags().StringVar(&cellText, "cell-text", "", "New text for the addressed table cell")
	updateCmd.Flags().IntVar(&sectionSlide, "section", -1, "Section-header slide index to update")
	updateCmd.Flags().StringVar(&sectionTitle, "section-title", "", "New section title")
	updateCmd.Flags().StringVar(&sectionSummary, "section-summary", "", "New section summary")

	rootCmd.AddCommand(showCmd, updateCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openDeck(path string) (*deckhand.Deck, *zap.Logger, error) {
	log, err := newLogger(debug)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	opts := deckhand.Options{Logger: log}
	if configPath != "" {
		cfg, err := deckhand.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		opts.Config = cfg
	}
	deck, err := deckhand.Open(path, opts)
	if err != nil {
		return nil, nil, err
	}
	return deck, log, nil
}

// newLogger returns a development logger when debugging, otherwise a
// production logger.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runShow(cmd *cobra.Command, args []string) error {
	deck, log, err := openDeck(args[0])
	if err != nil {
		return err
	}
	defer deck.Close()
	defer log.Sync()

	deck.Classify()

	if xlsxPath != "" {
		tables := make(map[int][]models.Grid)
		for i := 0; i < deck.SlideCount(); i++ {
			grids, err := deck.ExtractTables(i)
			if err != nil {
				return err
			}
			if len(grids) > 0 {
				tables[i] = grids
			}
		}
		if err := output.ExportXLSX(xlsxPath, tables); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
	}

	if csvSlide >= 0 {
		grids, err := deck.ExtractTables(csvSlide)
		if err != nil {
			return err
		}
		return output.WriteCSV(cmd.OutOrStdout(), grids)
	}

	if asJSON {
		data, err := output.ToJSON(deck.Report(), pretty)
		if err != nil {
			return fmt.Errorf("serializing report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	return deck.WriteReport(cmd.OutOrStdout())
}

func runUpdate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	deck, log, err := openDeck(inputPath)
	if err != nil {
		return err
	}
	defer deck.Close()
	defer log.Sync()

	deck.Classify()

	var title, attr *string
	if cmd.Flags().Changed("title") {
		title = &titleText
	}
	if cmd.Flags().Changed("attribution") {
		attr = &attribution
	}
	if err := deck.SetTitleSlide(titleSlide, title, attr); err != nil {
		return err
	}

	if cellSlide >= 0 {
		if err := deck.SetTableCell(cellSlide, cellRow, cellCol, cellText); err != nil {
			return err
		}
	}

	if sectionSlide >= 0 {
		var st, ss *string
		if cmd.Flags().Changed("section-title") {
			st = &sectionTitle
		}
		if cmd.Flags().Changed("section-summary") {
			ss = &sectionSummary
		}
		if err := deck.SetSectionSummary(sectionSlide, st, ss); err != nil {
			return err
		}
	}

	out := outputPath
	if out == "" {
		out = defaultOutputPath(inputPath)
	}
	saved, err := deck.Save(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Presentation updated: %s -> %s\n", inputPath, saved)
	return nil
}

// defaultOutputPath derives "<base>_update<ext>" from the input path.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "_update" + ext
}
