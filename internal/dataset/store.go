package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// Store reads WID tables from a directory. File naming follows the WID
// bulk download layout: WID_countries.csv, WID_data_<CC>.csv, and
// WID_metadata_<CC>.csv.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// Countries loads the global country index.
func (s *Store) Countries() ([]Country, error) {
	rows, idx, err := s.readTable(filepath.Join(s.dir, "WID_countries.csv"))
	if err != nil {
		return nil, err
	}

	alpha2, err := idx.column("alpha2")
	if err != nil {
		return nil, err
	}
	titleName, err := idx.column("titlename")
	if err != nil {
		return nil, err
	}

	countries := make([]Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, Country{
			Alpha2:    row[alpha2],
			TitleName: row[titleName],
		})
	}
	return countries, nil
}

// Observations loads the data table for one country code.
func (s *Store) Observations(code string) ([]Observation, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("WID_data_%s.csv", code))
	rows, idx, err := s.readTable(path)
	if err != nil {
		return nil, err
	}

	variable, err := idx.column("variable")
	if err != nil {
		return nil, err
	}
	year, err := idx.column("year")
	if err != nil {
		return nil, err
	}
	pctl, err := idx.column("percentile")
	if err != nil {
		return nil, err
	}
	value, err := idx.column("value")
	if err != nil {
		return nil, err
	}

	observations := make([]Observation, 0, len(rows))
	for n, row := range rows {
		y, err := strconv.Atoi(row[year])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid year %q: %w", path, n+2, row[year], err)
		}
		// Some WID rows carry an empty value; skip them rather than
		// treating them as zero income.
		if row[value] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[value], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: invalid value %q: %w", path, n+2, row[value], err)
		}
		observations = append(observations, Observation{
			Variable:   row[variable],
			Year:       y,
			Percentile: row[pctl],
			Value:      v,
		})
	}

	s.logger.Debug("loaded observations",
		zap.String("op", "dataset.Observations"),
		zap.String("country", code),
		zap.Int("rows", len(observations)),
	)
	return observations, nil
}

// Metadata loads the variable metadata table for one country code.
func (s *Store) Metadata(code string) ([]VariableMeta, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("WID_metadata_%s.csv", code))
	rows, idx, err := s.readTable(path)
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int)
	for _, name := range []string{"variable", "unit", "shortname", "shorttype", "shortpop", "shortage"} {
		i, err := idx.column(name)
		if err != nil {
			return nil, err
		}
		cols[name] = i
	}

	meta := make([]VariableMeta, 0, len(rows))
	for _, row := range rows {
		meta = append(meta, VariableMeta{
			Variable:  row[cols["variable"]],
			Unit:      row[cols["unit"]],
			ShortName: row[cols["shortname"]],
			ShortType: row[cols["shorttype"]],
			ShortPop:  row[cols["shortpop"]],
			ShortAge:  row[cols["shortage"]],
		})
	}
	return meta, nil
}

// Years returns the distinct years present for a variable, newest first.
func Years(observations []Observation, variable string) []int {
	seen := make(map[int]struct{})
	for _, obs := range observations {
		if obs.Variable == variable {
			seen[obs.Year] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// DefaultYear picks the year preselected by the explorer: the second
// newest when more than one year is available, otherwise the newest.
func DefaultYear(years []int) (int, bool) {
	if len(years) == 0 {
		return 0, false
	}
	if len(years) > 1 {
		return years[1], true
	}
	return years[0], true
}

// columnIndex maps lowercased header names to their positions.
type columnIndex struct {
	path    string
	columns map[string]int
}

func (c columnIndex) column(name string) (int, error) {
	i, ok := c.columns[name]
	if !ok {
		return 0, fmt.Errorf("%s: missing column %q", c.path, name)
	}
	return i, nil
}

func (s *Store) readTable(path string) ([][]string, columnIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, columnIndex{}, fmt.Errorf("failed to open table: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			s.logger.Warn("failed to close table",
				zap.String("op", "dataset.readTable"),
				zap.String("path", path),
				zap.Error(closeErr),
			)
		}
	}()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, columnIndex{}, fmt.Errorf("%s: failed to read header: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeHeader(name)] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, columnIndex{}, fmt.Errorf("%s: failed to read row: %w", path, err)
		}
		if len(row) < len(header) {
			continue
		}
		rows = append(rows, row)
	}

	return rows, columnIndex{path: path, columns: columns}, nil
}

func normalizeHeader(name string) string {
	b := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		// The WID export prefixes the first header cell with a BOM.
		if c < 0x20 || c >= 0x7f {
			continue
		}
		b = append(b, c)
	}
	return string(b)
}
