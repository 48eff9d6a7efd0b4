package market

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// LoadStats reports what the loader had to do to produce a clean series.
type LoadStats struct {
	Rows      int // rows that became bars
	Excluded  int // rows dropped for a non-positive close
	BadFields int // numeric fields that failed to parse and fell back to zero
	BadRows   int // rows skipped outright (wrong column count, unparseable date)
}

// LoadBars reads a daily-bar CSV with columns date,open,high,low,close,volume
// and returns a clean, date-ascending series.
//
// Files ending in .gz or .xz are decompressed on the fly. A header row is
// detected by sniffing the first column. Numeric fields that fail to parse
// fall back to zero; rows whose close ends up non-positive are excluded so
// the engine's close > 0 invariant holds.
func LoadBars(path string) (Series, LoadStats, error) {
	var stats LoadStats

	rc, err := openDataset(path)
	if err != nil {
		return nil, stats, err
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var bars Series
	first := true

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read %s: %w", path, err)
		}
		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}
		if len(row) < 6 {
			stats.BadRows++
			continue
		}

		date, err := parseDate(row[0])
		if err != nil {
			stats.BadRows++
			continue
		}

		b := Bar{
			Date:  date,
			Open:  coerce(row[1], &stats),
			High:  coerce(row[2], &stats),
			Low:   coerce(row[3], &stats),
			Close: coerce(row[4], &stats),
		}
		b.Volume = int64(coerce(row[5], &stats))

		if b.Close <= 0 {
			stats.Excluded++
			continue
		}

		bars = append(bars, b)
		stats.Rows++
	}

	bars.Sort()
	return bars, stats, nil
}

// openDataset opens path, transparently unwrapping gzip or xz compression.
func openDataset(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &compressedFile{r: gz, f: f}, nil

	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		return &compressedFile{r: xr, f: f}, nil
	}

	return f, nil
}

type compressedFile struct {
	r io.Reader
	f *os.File
}

func (c *compressedFile) Read(p []byte) (int, error) { return c.r.Read(p) }

func (c *compressedFile) Close() error {
	if gz, ok := c.r.(*gzip.Reader); ok {
		gz.Close()
	}
	return c.f.Close()
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "date")
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}

// coerce parses a numeric field, falling back to zero on failure.
func coerce(s string, stats *LoadStats) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		stats.BadFields++
		return 0
	}
	return v
}
