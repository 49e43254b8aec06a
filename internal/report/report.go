package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/contactkeval/greek-plotter/internal/curve"
)

// Places is the number of decimals kept in CSV output.
const Places = 8

type csvRow struct {
	Spot  string `csv:"spot"`
	Value string `csv:"value"`
}

// BaseName is the report file stem for a curve, e.g. "call_delta".
func BaseName(c *curve.Curve) string {
	return strings.ToLower(c.OptionType.String() + "_" + c.GreekType.String())
}

func WriteJSON(c *curve.Curve, outdir string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, BaseName(c)+".json"), b, 0644)
}

func WriteCSV(c *curve.Curve, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, BaseName(c)+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	rows := make([]*csvRow, 0, len(c.Points))
	for _, pt := range c.Points {
		rows = append(rows, &csvRow{Spot: formatValue(pt.Spot), Value: formatValue(pt.Value)})
	}
	return gocsv.MarshalFile(&rows, f)
}

// formatValue rounds v to Places decimals. decimal cannot hold NaN or Inf,
// so those are written the way strconv spells them.
func formatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).Round(Places).String()
}
