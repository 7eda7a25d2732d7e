package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/courselist-go/internal/config"
	"github.com/ukaji3/courselist-go/pkg/courselist"
	"github.com/ukaji3/courselist-go/pkg/courselist/output"
)

var (
	sheetName   string
	column      string
	outputPath  string
	format      string
	showPrice   bool
	auxiliaries []string
	groups      []string
	byGroup     bool
	lang        string
	delimiter   string
	bom         bool
	encoding    string
	pretty      bool
	headerRows  int
	idCol       string
	nameCol     string
	phoneCol    string
	emailCol    string
	priceOffset int
	save        bool
	noPrefs     bool
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input.xlsx|input.ods]",
		Short: "Extract participants and write the course list",
		Long: `generate reads the registration sheet, skips the header block, keeps every row
with text in the grouping column and writes the participants sorted by name
and customer number.

Settings not given on the command line are taken from the preferences file.`,
		Example: `  courselist generate anmeldungen.xlsx -s 2024 -c W -o kurse.xlsx --show-price
  courselist generate anmeldungen.ods -s Kurse -c CY -o kurse.csv --aux Level=AB --aux Note=AC
  courselist generate --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.StringVarP(&sheetName, "sheet", "s", "", "Sheet name")
	f.StringVarP(&column, "column", "c", "", "Grouping column label, e.g. W")
	f.StringVarP(&outputPath, "output", "o", "", "Output file (.csv, .xlsx or .json)")
	f.StringVar(&format, "format", "", "Output format: csv, xlsx, json (default: from output extension)")
	f.BoolVar(&showPrice, "show-price", false, "Add the balance column (grouping column + price offset)")
	f.StringArrayVar(&auxiliaries, "aux", nil, "Auxiliary column as Label=COLUMN (repeatable)")
	f.StringSliceVar(&groups, "group", nil, "Only include these groups")
	f.BoolVar(&byGroup, "by-group", false, "Sort by group before name")
	f.StringVar(&lang, "lang", "", "Header language: en or de")
	f.StringVar(&delimiter, "delimiter", ",", `CSV field delimiter ("\t" for tab)`)
	f.BoolVar(&bom, "bom", false, "Prefix UTF-8 CSV output with a byte order mark")
	f.StringVar(&encoding, "encoding", "utf-8", "CSV encoding: utf-8 or windows-1252")
	f.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	f.IntVar(&headerRows, "header-rows", courselist.DefaultHeaderRows, "Number of header rows to skip")
	f.StringVar(&idCol, "id-col", "A", "Customer number column")
	f.StringVar(&nameCol, "name-col", "C", "Name column")
	f.StringVar(&phoneCol, "phone-col", "H", "Telephone column")
	f.StringVar(&emailCol, "email-col", "L", "Email column")
	f.IntVar(&priceOffset, "price-offset", courselist.DefaultLayout().PriceOffset, "Price column offset from the grouping column")
	f.BoolVar(&save, "save", false, "Store the effective settings as preferences")
	f.BoolVar(&noPrefs, "no-prefs", false, "Ignore the preferences file")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	prefsPath, err := env.PreferencesPath()
	if err != nil {
		return err
	}

	prefs := &config.Preferences{}
	if !noPrefs {
		if prefs, err = config.LoadPreferences(prefsPath); err != nil {
			return err
		}
	}

	if err := applyFlags(cmd, args, prefs); err != nil {
		return err
	}

	req, err := buildRequest(prefs)
	if err != nil {
		return err
	}

	summary, err := courselist.Generate(req)
	if err != nil {
		return fmt.Errorf("failed to generate course list: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d groups and %d participants.\nWrote result to %s\n",
		summary.Groups, summary.Participants, summary.Destination)

	if save {
		if err := prefs.Save(prefsPath); err != nil {
			return err
		}
		slog.Info("preferences saved", slog.String("path", prefsPath))
	}
	return nil
}

// applyFlags overlays command-line values on the stored preferences.
func applyFlags(cmd *cobra.Command, args []string, prefs *config.Preferences) error {
	flags := cmd.Flags()

	if len(args) == 1 {
		prefs.Source = args[0]
	}
	if flags.Changed("sheet") {
		prefs.Sheet = sheetName
	}
	if flags.Changed("column") {
		prefs.Column = column
	}
	if flags.Changed("output") {
		prefs.Destination = outputPath
	}
	if flags.Changed("lang") {
		prefs.Language = lang
	}
	if flags.Changed("show-price") {
		prefs.ShowPrice = showPrice
	}
	if flags.Changed("aux") {
		aux, err := parseAuxiliaries(auxiliaries)
		if err != nil {
			return err
		}
		prefs.Auxiliaries = aux
	}
	if prefs.ShowPrice && flags.Changed("aux") && !flags.Changed("show-price") {
		prefs.ShowPrice = false
	}
	if flags.Changed("show-price") && showPrice && !flags.Changed("aux") {
		prefs.Auxiliaries = nil
	}

	layout, changed, err := layoutFromFlags(flags, prefs.Layout)
	if err != nil {
		return err
	}
	if changed {
		prefs.Layout = &layout
	}
	return nil
}

// layoutFromFlags applies the layout flags given on the command line to base,
// or to the default layout when base is nil. Flags left unset keep the base
// values.
func layoutFromFlags(flags *pflag.FlagSet, base *courselist.Layout) (courselist.Layout, bool, error) {
	layout := courselist.DefaultLayout()
	if base != nil {
		layout = *base
	}
	changed := false

	if flags.Changed("header-rows") {
		layout.HeaderRows = headerRows
		changed = true
	}
	if flags.Changed("price-offset") {
		layout.PriceOffset = priceOffset
		changed = true
	}

	columns := []struct {
		flag   string
		label  string
		target *int
	}{
		{"id-col", idCol, &layout.IDColumn},
		{"name-col", nameCol, &layout.NameColumn},
		{"phone-col", phoneCol, &layout.PhoneColumn},
		{"email-col", emailCol, &layout.EmailColumn},
	}
	for _, c := range columns {
		if !flags.Changed(c.flag) {
			continue
		}
		idx, err := courselist.ResolveColumn(c.label)
		if err != nil {
			return layout, false, fmt.Errorf("--%s: %w", c.flag, err)
		}
		*c.target = idx
		changed = true
	}
	return layout, changed, nil
}

// parseAuxiliaries parses Label=COLUMN pairs. A value without "=" is taken as
// a bare column label.
func parseAuxiliaries(values []string) ([]courselist.Auxiliary, error) {
	aux := make([]courselist.Auxiliary, 0, len(values))
	for _, v := range values {
		idx := strings.LastIndex(v, "=")
		if idx < 0 {
			aux = append(aux, courselist.Auxiliary{Column: strings.TrimSpace(v)})
			continue
		}
		label := strings.TrimSpace(v[:idx])
		if label == "" {
			return nil, fmt.Errorf("auxiliary %q: empty label", v)
		}
		aux = append(aux, courselist.Auxiliary{Label: label, Column: strings.TrimSpace(v[idx+1:])})
	}
	return aux, nil
}

func buildRequest(prefs *config.Preferences) (courselist.Request, error) {
	source, err := config.ExpandPath(prefs.Source)
	if err != nil {
		return courselist.Request{}, err
	}
	destination, err := config.ExpandPath(prefs.Destination)
	if err != nil {
		return courselist.Request{}, err
	}

	headers, err := output.HeadersFor(prefs.Language)
	if err != nil {
		return courselist.Request{}, err
	}

	var outFormat output.Format
	if format != "" {
		if outFormat, err = output.ParseFormat(format); err != nil {
			return courselist.Request{}, err
		}
	}

	delim, err := parseDelimiter(delimiter)
	if err != nil {
		return courselist.Request{}, err
	}

	return courselist.Request{
		Source:      source,
		Sheet:       prefs.Sheet,
		Column:      prefs.Column,
		Destination: destination,
		Options: courselist.Options{
			Layout:      prefs.Layout,
			ShowPrice:   prefs.ShowPrice,
			Auxiliaries: prefs.Auxiliaries,
			Groups:      groups,
		},
		ByGroup: byGroup,
		Output: output.Options{
			Format:  outFormat,
			Headers: headers,
			CSV: output.CSVOptions{
				Delimiter: delim,
				BOM:       bom,
				Encoding:  encoding,
			},
			Pretty: pretty,
		},
	}, nil
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "", ",":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return r[0], nil
}
