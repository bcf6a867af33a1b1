package conn

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tobsdb/primdb/internal/config"
	"github.com/tobsdb/primdb/internal/types"
)

type Renderer interface {
	Render(w io.Writer, res Response) error
}

func NewRenderer(mode config.OutputMode) Renderer {
	if mode == config.OutputJSON {
		return JSONRenderer{}
	}
	return TableRenderer{}
}

// JSONRenderer writes every response as one JSON line.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, res Response) error {
	return json.NewEncoder(w).Encode(res)
}

// TableRenderer writes messages as text and select results as a boxed table.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, res Response) error {
	if res.IsError() {
		_, err := fmt.Fprintf(w, "Error: %s\n", res.Message)
		return err
	}

	var sb strings.Builder
	switch data := res.Data.(type) {
	case *ResultSet:
		if len(data.Rows) > 0 {
			sb.WriteString(FormatTable(data))
		}
	case []string:
		for _, name := range data {
			sb.WriteString("- " + name + "\n")
		}
	}
	if len(res.Message) > 0 {
		sb.WriteString(res.Message + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatTable draws rs with +---+ borders, one line per row.
func FormatTable(rs *ResultSet) string {
	widths := make([]int, len(rs.Columns))
	for i, col := range rs.Columns {
		widths[i] = utf8.RuneCountInString(col)
	}

	cells := make([][]string, len(rs.Rows))
	for r, row := range rs.Rows {
		cells[r] = make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			v := types.Stringify(row.Get(col))
			cells[r][i] = v
			if n := utf8.RuneCountInString(v); n > widths[i] {
				widths[i] = n
			}
		}
	}

	border := "+"
	for _, w := range widths {
		border += strings.Repeat("-", w+2) + "+"
	}

	var sb strings.Builder
	writeLine := func(values []string) {
		sb.WriteString("|")
		for i, v := range values {
			sb.WriteString(" " + v + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(v)) + " |")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(border + "\n")
	writeLine(rs.Columns)
	sb.WriteString(border + "\n")
	for _, row := range cells {
		writeLine(row)
	}
	sb.WriteString(border + "\n")
	return sb.String()
}
