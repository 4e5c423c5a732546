package dataset

import (
	"strings"
	"testing"
)

func TestPostgresSourceKey(t *testing.T) {
	tests := []struct {
		src  PostgresSource
		want string
	}{
		{PostgresSource{Table: "day"}, "postgres:day"},
		{PostgresSource{Database: "bikes", Table: "day"}, "postgres:bikes.day"},
		{PostgresSource{Database: "archive", Table: "day"}, "postgres:archive.day"},
	}
	for _, tt := range tests {
		if got := tt.src.Key(); got != tt.want {
			t.Errorf("Key(): got %q, want %q", got, tt.want)
		}
	}
}

func TestPostgresVersionQueryTracksCounts(t *testing.T) {
	q := versionQuery("day")
	for _, want := range []string{`count(*)`, `max("dteday")`, `sum("cnt")`, `FROM "day"`} {
		if !strings.Contains(q, want) {
			t.Errorf("version query %q missing %q", q, want)
		}
	}
}
