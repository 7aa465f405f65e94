package histogram

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/snowmap/internal/domain"
	"github.com/bnema/snowmap/internal/ports"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultTitle    = " Assignment group distribution "
	DefaultBarChar  = "#"
	DefaultFillChar = "="
)

type Options struct {
	// Width is the display width in cells; non-positive means ports.DefaultDisplayWidth.
	Width    int
	BarChar  string
	FillChar string
	Title    string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = ports.DefaultDisplayWidth
	}
	if o.BarChar == "" {
		o.BarChar = DefaultBarChar
	}
	if o.FillChar == "" {
		o.FillChar = DefaultFillChar
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	return o
}

type Row struct {
	Label string
	Bar   string
	Count string
	Value int
}

func (r Row) String() string {
	return r.Label + ": " + r.Bar + r.Count
}

type Layout struct {
	Header string
	Banner string
	Rows   []Row
}

// NewLayout sorts the entries by descending count (ties keep their order) and fits one bar per
// entry into the remaining width: round(count / max * (width - longest key - 2)) cells, with the
// count right-aligned at the end of the bar.
func NewLayout(entries []domain.DistributionEntry, opts Options) Layout {
	opts = opts.withDefaults()

	ordered := domain.RankEntries(entries)

	longest, maxCount := maxValues(ordered)
	available := opts.Width - longest - 2
	if available < 0 {
		available = 0
	}

	rows := make([]Row, 0, len(ordered))
	for _, entry := range ordered {
		barWidth := 0
		if maxCount > 0 {
			barWidth = int(math.Round(float64(entry.Count) / float64(maxCount) * float64(available)))
		}

		count := strconv.Itoa(entry.Count)
		fill := barWidth - len(count)
		if fill < 0 {
			fill = 0
		}

		rows = append(rows, Row{
			Label: runewidth.FillLeft(entry.Key, longest),
			Bar:   strings.Repeat(opts.BarChar, fill),
			Count: count,
			Value: entry.Count,
		})
	}

	return Layout{
		Header: fmt.Sprintf("%d distinct categories are in use", len(ordered)),
		Banner: centerBanner(opts.Title, opts.FillChar, opts.Width),
		Rows:   rows,
	}
}

func (l Layout) Lines() []string {
	lines := make([]string, 0, len(l.Rows)+3)
	lines = append(lines, l.Header, "", l.Banner)
	for _, row := range l.Rows {
		lines = append(lines, row.String())
	}
	return lines
}

func (l Layout) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Total sums the counts behind the rendered rows.
func (l Layout) Total() int {
	total := 0
	for _, row := range l.Rows {
		total += row.Value
	}
	return total
}

func maxValues(entries []domain.DistributionEntry) (int, int) {
	longest, maxCount := 0, 0
	for _, entry := range entries {
		longest = max(longest, runewidth.StringWidth(entry.Key))
		maxCount = max(maxCount, entry.Count)
	}
	return longest, maxCount
}

func centerBanner(title, fill string, width int) string {
	titleWidth := runewidth.StringWidth(title)
	if titleWidth >= width {
		return title
	}

	pad := width - titleWidth
	left := pad / 2
	return strings.Repeat(fill, left) + title + strings.Repeat(fill, pad-left)
}
