package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `instant,dteday,season,yr,mnth,holiday,weathersit,temp,cnt
1,2011-01-01,1,0,1,0,2,0.344167,100
2,2011-01-02,1,0,1,0,1,0.363478,50
3,2012-06-15,2,1,6,0,3,0.7,300
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func mustFromRecords(t *testing.T, csv string) *Dataset {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	header := strings.Split(lines[0], ",")
	var rows [][]string
	for _, l := range lines[1:] {
		rows = append(rows, strings.Split(l, ","))
	}
	ds, err := FromRecords("test", header, rows)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return ds
}
