package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
	"github.com/frenchfries11234/ff.gg/internal/domain/projection"
	"github.com/frenchfries11234/ff.gg/internal/usecase"
)

type Format string

const (
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or table)", v)
	}
}

type Options struct {
	Format Format
	// Detail adds the per-line estimates behind every stat.
	Detail bool
	Pretty bool
}

// Write renders the slate rows to w.
func Write(w io.Writer, slate usecase.Slate, opts Options) error {
	switch opts.Format {
	case FormatTable:
		return writeTable(w, slate, opts.Detail)
	default:
		return writeJSON(w, slate, opts)
	}
}

// lineDetail mirrors odds.LineEstimate for output.
type lineDetail struct {
	Line       float64 `json:"line"`
	OverPrice  float64 `json:"over_price"`
	UnderPrice float64 `json:"under_price"`
	POver      float64 `json:"p_over"`
	PUnder     float64 `json:"p_under"`
	EV         float64 `json:"ev"`
}

type detailedRow struct {
	Row   projection.ResultRow    `json:"row"`
	Lines map[string][]lineDetail `json:"lines"`
}

func writeJSON(w io.Writer, slate usecase.Slate, opts Options) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}

	if !opts.Detail {
		rows := slate.Rows
		if rows == nil {
			rows = []projection.ResultRow{}
		}
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode rows: %w", err)
		}
		return nil
	}

	out := make([]detailedRow, 0, len(slate.Rows))
	for _, row := range slate.Rows {
		out = append(out, detailedRow{Row: row, Lines: rowLines(row.Detail)})
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode detailed rows: %w", err)
	}
	return nil
}

func rowLines(detail []odds.PropEstimate) map[string][]lineDetail {
	out := make(map[string][]lineDetail, len(detail))
	for _, est := range detail {
		if est.Prop == "" || len(est.Lines) == 0 {
			continue
		}
		lines := make([]lineDetail, 0, len(est.Lines))
		for _, l := range est.Lines {
			lines = append(lines, lineDetail{
				Line:       l.Line,
				OverPrice:  l.OverPrice,
				UnderPrice: l.UnderPrice,
				POver:      l.Prob.Over,
				PUnder:     l.Prob.Under,
				EV:         l.EV,
			})
		}
		out[est.Prop] = lines
	}
	return out
}

func writeTable(w io.Writer, slate usecase.Slate, detail bool) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(append([]string{"Player"}, slate.Header...))

	for _, row := range slate.Rows {
		cells := make([]string, 0, len(slate.Header)+1)
		cells = append(cells, row.Name, row.Game)
		for _, stat := range row.Stats {
			cells = append(cells, stat.Display())
		}
		for _, score := range row.Scores {
			cells = append(cells, strconv.FormatFloat(score.Points, 'f', 2, 64))
		}
		table.Append(cells)
	}
	table.Render()

	if !detail {
		return nil
	}
	return writeDetailTable(w, slate)
}

func writeDetailTable(w io.Writer, slate usecase.Slate) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write detail separator: %w", err)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Player", "Prop", "Line", "Over", "Under", "P(Over)", "EV"})
	prefixes := slate.Group.Prefixes()
	for _, row := range slate.Rows {
		for _, est := range row.Detail {
			for _, l := range est.Lines {
				table.Append([]string{
					row.Name,
					projection.ColumnLabel(est.Prop, prefixes),
					formatFloat(l.Line),
					formatFloat(l.OverPrice),
					formatFloat(l.UnderPrice),
					strconv.FormatFloat(l.Prob.Over, 'f', 3, 64),
					strconv.FormatFloat(l.EV, 'f', 3, 64),
				})
			}
		}
	}
	table.Render()
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
