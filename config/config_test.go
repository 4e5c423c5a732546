package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/joho/godotenv"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"DATA_SOURCE", "DATA_PATH", "TOP_N", "TOP_DAYS_SCOPE", "CORS_ORIGINS", "HTTP_ADDR"} {
		t.Setenv(k, "")
	}
	c := FromEnv()

	if c.DataSource != "csv" || c.DataPath != "day.csv" {
		t.Errorf("source: got %q %q", c.DataSource, c.DataPath)
	}
	if c.TopN != 10 || c.TopFromFiltered {
		t.Errorf("top: got %d filtered=%v", c.TopN, c.TopFromFiltered)
	}
	if c.HTTPAddr != ":8080" {
		t.Errorf("addr: got %q", c.HTTPAddr)
	}
}

func TestOverrides(t *testing.T) {
	t.Setenv("DATA_SOURCE", "Postgres")
	t.Setenv("TOP_N", "5")
	t.Setenv("TOP_DAYS_SCOPE", "filtered")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CHART_WIDTH", "not-a-number")

	c := FromEnv()
	if c.DataSource != "postgres" {
		t.Errorf("DataSource: got %q", c.DataSource)
	}
	if c.TopN != 5 || !c.TopFromFiltered {
		t.Errorf("top: got %d filtered=%v", c.TopN, c.TopFromFiltered)
	}
	if want := []string{"http://a.test", "http://b.test"}; !reflect.DeepEqual(c.CORSOrigins, want) {
		t.Errorf("CORSOrigins: got %v, want %v", c.CORSOrigins, want)
	}
	if c.ChartWidth != 1024 {
		t.Errorf("invalid int should fall back, got %d", c.ChartWidth)
	}
}

func TestDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("POSTGRES_TABLE=daily_rentals\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POSTGRES_TABLE", "")
	os.Unsetenv("POSTGRES_TABLE")
	if err := godotenv.Load(path); err != nil {
		t.Fatal(err)
	}
	if got := FromEnv().PostgresTable; got != "daily_rentals" {
		t.Errorf("PostgresTable: got %q", got)
	}
}

func TestDSN(t *testing.T) {
	c := &Config{PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u", PostgresPassword: "p", PostgresDB: "d", PostgresSSLMode: "disable"}
	want := "host=db port=5433 user=u password=p dbname=d sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
