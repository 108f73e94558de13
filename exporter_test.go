package quadprop

import (
	"os"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestImplementsExporter(t *testing.T) {
	implements := func(Exporter) {}
	implements(new(CSVExporter))
}

func TestCSVExportFail(t *testing.T) {
	_, err := NewCSVExporter(StateHeaders, "/noNoNoNo/", "temp.csv")
	if err == nil {
		t.Fatal("no issue when trying to create a file on root")
	}
}

func TestCSVExport(t *testing.T) {
	ce, err := NewCSVExporter(StateHeaders, ".", "temp.csv")
	if err != nil {
		t.Fatalf("could not create file %s", err)
	}
	vec := mat64.NewVector(StateSize, nil)
	vec.SetVec(3, 0.35)
	state, _ := NewState(vec)
	if err = ce.Write(state); err != nil {
		t.Fatalf("could not write state to file %s", err)
	}
	if err = ce.Close(); err != nil {
		t.Fatalf("could not close file %s", err)
	}
	os.Remove(ce.hdlr.Name())
}
