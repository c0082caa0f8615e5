package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/git-l10n/po-stats/config"
	"github.com/git-l10n/po-stats/flag"
	"github.com/git-l10n/po-stats/repository"
	"github.com/git-l10n/po-stats/util"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
	O   struct {
		Format    string
		Output    string
		Expand    bool
		ShowFlags bool
		Progress  bool
	}
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat [po-file]...",
		Short: "Report statistics of PO/POT files",
		Long: `Report statistics of one or more PO/POT files (or gettext JSON files):
  Total Keys      - number of comments, headers and message entries
  Dupe Keys       - repeated comments, header names and msgids
  Empty Values    - entries without translation
  Obsolete Values - obsolete entries (#~ format)

Without arguments, all po/*.po and po/*.pot files of the repository
(or the current directory) are reported.
Catalogs which fail to parse are reported as errors, the others are still shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	fs.StringVar(&v.O.Format, "format", "",
		"output format: 'table' or 'json' (default \"table\")")
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	fs.SetAnnotation("format", "group", []string{"Output options"})
	fs.SetAnnotation("output", "group", []string{"Output options"})

	fs.BoolVar(&v.O.Expand, "expand", false, "draw separators between all table rows")
	fs.BoolVar(&v.O.ShowFlags, "show-flags", false, "add a row per entry flag (fuzzy, c-format, ...)")
	fs.SetAnnotation("expand", "group", []string{"Table options"})
	fs.SetAnnotation("show-flags", "group", []string{"Table options"})

	fs.BoolVar(&v.O.Progress, "progress", false, "show progress on stderr while reading files")
	fs.SetAnnotation("progress", "group", []string{"Others"})

	v.cmd.SetUsageTemplate(groupedUsageTemplate)

	return v.cmd
}

// catalogFiles returns files given in args, or catalogs of the po directory.
func (v statCommand) catalogFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		for _, name := range args {
			if !util.Exist(name) {
				return nil, NewErrorWithUsage("file does not exist:", name)
			}
		}
		return args, nil
	}
	files, err := util.FindCatalogFiles(repository.WorkDirOrCwd())
	if err != nil {
		return nil, NewErrorWithUsageF("no po-file given and %v", err)
	}
	if len(files) == 0 {
		return nil, NewErrorWithUsageF("no po-file given and no catalogs in %s",
			filepath.Join(repository.WorkDirOrCwd(), util.PoDir))
	}
	return files, nil
}

// reportConfig loads the config files and applies command line flags.
func (v statCommand) reportConfig() (*config.ReportConfig, error) {
	workDir := ""
	if repository.Opened() {
		workDir = repository.WorkDirOrCwd()
	}
	cfg, err := config.LoadReportConfig(flag.ConfigFile(), workDir)
	if err != nil {
		return nil, NewStandardErrorF("%v", err)
	}
	fs := v.cmd.Flags()
	if fs.Changed("format") {
		cfg.Format = v.O.Format
	}
	if fs.Changed("expand") {
		cfg.Expand = &v.O.Expand
	}
	if fs.Changed("show-flags") {
		cfg.ShowFlags = &v.O.ShowFlags
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewErrorWithUsage(err)
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func newRenderer(cfg *config.ReportConfig, out io.Writer) (util.Renderer, error) {
	if cfg.Format == config.FormatJSON {
		return &util.JSONRenderer{Out: out}, nil
	}

	color.NoColor = flag.NoColor() || (!isTerminal(out) && flag.GitHubActionEvent() == "")
	r := util.NewTableRenderer(out)
	r.Expand = cfg.IsExpand()
	r.ShowFlags = cfg.IsShowFlags()
	if len(cfg.ColWidths) > 0 {
		widths := append([]int{}, util.DefaultColWidths...)
		copy(widths, cfg.ColWidths)
		r.ColWidths = widths
	}
	for name, attrs := range cfg.Styles {
		style, err := util.ParseStyle(attrs)
		if err != nil {
			return nil, NewStandardErrorF("bad style '%s': %v", name, err)
		}
		r.Styles[name] = style
	}
	return r, nil
}

func (v statCommand) Execute(args []string) error {
	files, err := v.catalogFiles(args)
	if err != nil {
		return err
	}
	cfg, err := v.reportConfig()
	if err != nil {
		return err
	}

	var out io.Writer = v.cmd.OutOrStdout()
	if v.O.Output != "" && v.O.Output != "-" {
		f, err := os.Create(v.O.Output)
		if err != nil {
			return NewStandardErrorF("failed to create output file %s: %v", v.O.Output, err)
		}
		defer f.Close()
		out = f
	}

	renderer, err := newRenderer(cfg, out)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if v.O.Progress && isTerminal(os.Stderr) {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Reading catalogs"),
			progressbar.OptionClearOnFinish())
	}

	var (
		pipeline = util.NewStatPipeline(renderer)
		errs     []error
	)
	for _, name := range files {
		if bar != nil {
			_ = bar.Add(1)
		}
		f, err := util.ReadCatalogFile(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := pipeline.Process(f); err != nil {
			errs = append(errs, err)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if err := pipeline.Finish(); err != nil {
		return NewStandardErrorF("failed to render statistics: %v", err)
	}
	if len(errs) > 0 {
		util.ReportItemErrors(errs)
		return NewStandardErrorF("fail to report %d of %d catalogs", len(errs), len(files))
	}
	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
