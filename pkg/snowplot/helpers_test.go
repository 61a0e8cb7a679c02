package snowplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// writeModelCSV writes rows hourly records starting at start to dir/{dataset}_o_{model}.csv.
// Every value column holds the hour index, except cellA which is zero on even hours.
func writeModelCSV(t *testing.T, dir, dataset, model string, start time.Time, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("ymd,time,gp,cellA,bioA,cellV,bioV,ocV\n")
	for i := 0; i < rows; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		cellA := i
		if i%2 == 0 {
			cellA = 0
		}
		fmt.Fprintf(&b, "%s,%d,%d,%d,%d,%d,%d,%d\n", ts.Format("2006010215"), i, i, cellA, i+1, i+1, i+1, i+1)
	}

	path := VariantPath(dir, dataset, model)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, filepath.Base(e.Name()))
	}
	return names
}
