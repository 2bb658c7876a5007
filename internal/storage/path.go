package storage

import (
	"fmt"
	"path"
	"regexp"
	"time"
)

var keyComponentPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,127}$`)

// BuildResultKey places archived result sets under a date-partitioned layout
// so buckets stay browsable by day.
func BuildResultKey(traceID string, at time.Time) (string, error) {
	if err := validateKeyComponent(traceID, "trace id"); err != nil {
		return "", err
	}

	ts := at.UTC()
	return path.Join(
		"results",
		fmt.Sprintf("%04d", ts.Year()),
		fmt.Sprintf("%02d", ts.Month()),
		fmt.Sprintf("%02d", ts.Day()),
		traceID+".parquet",
	), nil
}

func validateKeyComponent(value, field string) error {
	if !keyComponentPattern.MatchString(value) {
		return fmt.Errorf("invalid %s: %q", field, value)
	}
	return nil
}
