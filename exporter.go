package quadprop

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// StateHeaders names the 15 state slots in their fixed order.
var StateHeaders = []string{
	"rx", "ry", "rz",
	"vx", "vy", "vz",
	"ephi", "etheta", "epsi",
	"bax", "bay", "baz",
	"bgx", "bgy", "bgz",
}

// Exporter defines an export interface for propagated states.
type Exporter interface {
	Write(State) error
	Close() error
}

// CSVExporter exports a propagated trajectory to a CSV file.
type CSVExporter struct {
	delimiter string
	hdlr      *os.File
}

// Close closes the file.
func (e CSVExporter) Close() (err error) {
	err = e.WriteRawLn(fmt.Sprintf("# Closing date (UTC): %s\n", time.Now().UTC()))
	if err != nil {
		return
	}
	return e.hdlr.Close()
}

// Write writes the state to the CSV file.
func (e CSVExporter) Write(s State) error {
	vals := make([]string, StateSize)
	vec := s.Vector()
	for i := 0; i < StateSize; i++ {
		vals[i] = fmt.Sprintf("%f", vec.At(i, 0))
	}
	_, err := e.hdlr.WriteString(strings.Join(vals, e.delimiter) + "\n")
	return err
}

// WriteRawLn writes a raw line to the CSV file.
func (e CSVExporter) WriteRawLn(s string) error {
	_, err := e.hdlr.WriteString(s + "\n")
	return err
}

// NewCSVExporter initializes a new CSV export.
func NewCSVExporter(headers []string, filepath, filename string) (e *CSVExporter, err error) {
	f, err := os.Create(fmt.Sprintf("%s/%s", filepath, filename))
	if err != nil {
		return
	}
	delimiter := ","
	f.WriteString(fmt.Sprintf("# Creation date (UTC): %s\n%s\n", time.Now(), strings.Join(headers, delimiter)))
	e = &CSVExporter{delimiter, f}
	return
}
