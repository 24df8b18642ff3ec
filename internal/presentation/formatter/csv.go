package formatter

import (
	"encoding/csv"
	"io"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes one record per event in timeline order.
func (f *CSVFormatter) Format(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(eventHeaders); err != nil {
		return err
	}
	if r.Timeline != nil {
		for i, e := range r.Timeline.Events {
			if err := cw.Write(eventRow(i, e)); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
