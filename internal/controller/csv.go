package controller

import (
	"encoding/csv"
	"io"
	"strconv"

	m "github.com/mouse-blink/lloc/internal/model"
)

var csvHeader = []string{"Program Name", "Function Name", "Function LOC", "Total LOC"}

// writeCSV prints one file row followed by one row per counted function.
func writeCSV(w io.Writer, reports []m.Report, header bool) error {
	cw := csv.NewWriter(w)

	if header {
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
	}

	for _, report := range reports {
		row := []string{report.Source.Base(), "", "", strconv.FormatUint(report.Totals.LOC, 10)}
		if err := cw.Write(row); err != nil {
			return err
		}

		for _, fn := range report.Counted() {
			if err := cw.Write([]string{"", fn.Name, strconv.FormatUint(fn.LOC, 10)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
