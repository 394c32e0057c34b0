package diag

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the recorded samples as CSV: a header row, then one row
// per sample. Floats are formatted at full round-trip precision.
func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"run_id", "days", "kinetic", "potential", "total", "momentum_x", "momentum_y"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range r.samples {
		row := []string{
			r.RunID,
			formatFloat(s.Days),
			formatFloat(s.Kinetic),
			formatFloat(s.Potential),
			formatFloat(s.Total),
			formatFloat(s.Momentum.X),
			formatFloat(s.Momentum.Y),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes the samples to path, replacing any existing file. The
// write goes through a temp file and rename so a crash cannot leave a
// half-written export behind.
func (r *Recorder) ExportFile(path string) error {
	var buf bytes.Buffer
	if err := r.WriteCSV(&buf); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
