package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Source produces a Dataset. Key identifies the source and Version changes
// whenever its content may have changed.
type Source interface {
	Key() string
	Version(ctx context.Context) (string, error)
	Load(ctx context.Context) (*Dataset, error)
}

// CSVSource reads a comma separated file with a header row.
type CSVSource struct {
	Path string
}

func (s CSVSource) Key() string {
	if abs, err := filepath.Abs(s.Path); err == nil {
		return "file:" + abs
	}
	return "file:" + s.Path
}

// Version is derived from the file's size and modification time.
func (s CSVSource) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fi, err := os.Stat(s.Path)
	if err != nil {
		return "", loadErr(s.Path, "stat", err)
	}
	if fi.IsDir() {
		return "", loadErr(s.Path, "is a directory", nil)
	}
	return fmt.Sprintf("%d-%d", fi.Size(), fi.ModTime().UnixNano()), nil
}

func (s CSVSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadErr(s.Path, "open", err)
	}
	defer f.Close()

	// Everything is read as text; typing happens in FromRecords.
	df := dataframe.ReadCSV(f,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, loadErr(s.Path, "read csv", df.Err)
	}
	records := df.Records()
	if len(records) == 0 {
		return nil, loadErr(s.Path, "read csv", ErrEmpty)
	}
	return FromRecords(s.Path, records[0], records[1:])
}

// Load reads the CSV file at path without caching.
func Load(path string) (*Dataset, error) {
	return CSVSource{Path: path}.Load(context.Background())
}
