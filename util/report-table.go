package util

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Style names which are not language tags.
const (
	StyleHeader    = "header"
	StyleAttention = "attention"
	StyleBorder    = "border"
)

// DefaultColWidths are minimal text widths of the label column and the
// Comments, Headers and Strings columns, not counting cell padding.
var DefaultColWidths = []int{30, 18, 18, 18}

// StyleTable maps language tags and the header, attention and border
// names to display styles.
type StyleTable map[string]*color.Color

// DefaultStyleTable returns the styles used unless configured otherwise.
func DefaultStyleTable() StyleTable {
	return StyleTable{
		StyleHeader:    color.New(color.FgWhite, color.Bold, color.Underline),
		StyleAttention: color.New(color.FgRed, color.Italic),
		"en":           color.New(color.FgGreen, color.Bold),
		"de":           color.New(color.FgCyan, color.Bold),
		"fr":           color.New(color.FgBlue, color.Bold),
		"ja":           color.New(color.FgMagenta, color.Bold),
		PotLanguage:    color.New(color.FgYellow, color.Bold, color.Italic),
	}
}

// Lookup returns the style of a language tag. "pt_BR" falls back to the
// style of "pt". Unknown languages have no style.
func (t StyleTable) Lookup(name string) *color.Color {
	if c, ok := t[name]; ok {
		return c
	}
	if idx := strings.IndexAny(name, "_-@"); idx > 0 {
		return t[name[:idx]]
	}
	return nil
}

var colorAttributes = map[string]color.Attribute{
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,
	"black":     color.FgBlack,
	"red":       color.FgRed,
	"green":     color.FgGreen,
	"yellow":    color.FgYellow,
	"blue":      color.FgBlue,
	"magenta":   color.FgMagenta,
	"cyan":      color.FgCyan,
	"white":     color.FgWhite,
	"gray":      color.FgHiBlack,
	"bgblack":   color.BgBlack,
	"bgred":     color.BgRed,
	"bggreen":   color.BgGreen,
	"bgyellow":  color.BgYellow,
	"bgblue":    color.BgBlue,
	"bgmagenta": color.BgMagenta,
	"bgcyan":    color.BgCyan,
	"bgwhite":   color.BgWhite,
}

// ParseStyle builds a style from attribute names such as "cyan", "bold"
// and "italic".
func ParseStyle(attrs []string) (*color.Color, error) {
	var values []color.Attribute
	for _, attr := range attrs {
		value, ok := colorAttributes[strings.ToLower(strings.TrimSpace(attr))]
		if !ok {
			return nil, fmt.Errorf("unknown style attribute %q", attr)
		}
		values = append(values, value)
	}
	return color.New(values...), nil
}

// FormatWithPercentage formats a count with its share of total,
// e.g. "1 (33.33%)".
func FormatWithPercentage(individual, total int) string {
	return fmt.Sprintf("%d (%s%%)", individual, FormatPercentage(Percentage(individual, total)))
}

func styled(style *color.Color, text string) string {
	if style == nil {
		return text
	}
	return style.Sprint(text)
}

// TableRenderer prints statistics of all catalogs in one table, four rows
// per catalog (plus one per flag with ShowFlags).
type TableRenderer struct {
	Out       io.Writer
	Styles    StyleTable
	ColWidths []int
	// Expand draws a separator line between every two rows.
	Expand    bool
	ShowFlags bool
}

// NewTableRenderer returns a renderer with default styles and widths.
func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{
		Out:       out,
		Styles:    DefaultStyleTable(),
		ColWidths: DefaultColWidths,
	}
}

func (v *TableRenderer) percentCell(individual, total int) string {
	text := FormatWithPercentage(individual, total)
	if Percentage(individual, total) != 0 {
		return styled(v.Styles[StyleAttention], text)
	}
	return text
}

func (v *TableRenderer) rows(s *CatalogStats) [][]string {
	var (
		style = v.Styles.Lookup(s.Language)
		none  = "--"
		label = func(name string) string {
			return styled(style, "["+s.Language+"] "+name)
		}
	)

	rows := [][]string{
		{label("Total Keys"),
			strconv.Itoa(s.Comments.Total),
			strconv.Itoa(s.Headers.Total),
			strconv.Itoa(s.Entries.Total)},
		{label("Dupe Keys"),
			v.percentCell(s.Comments.Duplicate, s.Comments.Total),
			v.percentCell(s.Headers.Duplicate, s.Headers.Total),
			v.percentCell(s.Entries.Duplicate, s.Entries.Total)},
		{label("Empty Values"), none, none, v.percentCell(s.Empty, s.Entries.Total)},
		{label("Obsolete Values"), none, none, v.percentCell(s.Obsolete, s.Entries.Total)},
	}
	if v.ShowFlags {
		for _, name := range s.FlagNames() {
			rows = append(rows, []string{
				label("Flag " + name), none, none, v.percentCell(s.Flags[name], s.Entries.Total),
			})
		}
	}
	return rows
}

// Render writes the table to v.Out.
func (v *TableRenderer) Render(stats []*CatalogStats) error {
	if v.Styles == nil {
		v.Styles = StyleTable{}
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})
	table.SetRowLine(v.Expand)
	if c := v.Styles[StyleBorder]; c != nil {
		table.SetCenterSeparator(c.Sprint("+"))
		table.SetColumnSeparator(c.Sprint("|"))
		table.SetRowSeparator(c.Sprint("-"))
	}
	for i, w := range v.ColWidths {
		if i < 4 && w > 0 {
			table.SetColMinWidth(i, w)
		}
	}

	header := v.Styles[StyleHeader]
	table.SetHeader([]string{
		"",
		styled(header, "Comments"),
		styled(header, "Headers"),
		styled(header, "Strings"),
	})
	for _, s := range stats {
		table.AppendBulk(v.rows(s))
	}
	table.Render()

	_, err := v.Out.Write(buf.Bytes())
	return err
}
