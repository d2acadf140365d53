package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Required CSV columns, by header name. Column order in the file is free.
const (
	colName  = "comando"
	colDesc  = "descrição"
	colRank  = "ordem_importância"
	colUsage = "como_pode_ser_usado"
)

var requiredColumns = []string{colName, colDesc, colRank, colUsage}

// ErrNotFound reports a missing catalog file.
var ErrNotFound = errors.New("catalog file not found")

// SchemaError reports required columns absent from the header row.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid catalog schema: missing %s", strings.Join(e.Missing, ", "))
}

// ParseError reports an unusable data row.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: invalid %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the catalog CSV at path and returns its entries sorted
// ascending by rank. Either the complete catalog is returned or an
// error; there is no partial result.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads catalog rows from r. Exposed for tests and alternative
// sources that already hold the bytes.
func Parse(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &SchemaError{Missing: requiredColumns}
		}
		return nil, &ParseError{Line: 1, Err: err}
	}

	idx, missing := mapHeader(header)
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var out []Entry
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		entry, perr := parseRow(rec, idx, line)
		if perr != nil {
			return nil, perr
		}
		out = append(out, entry)
	}

	sortByRank(out)
	return out, nil
}

// mapHeader resolves each required column to its position. The first
// cell may carry a UTF-8 BOM.
func mapHeader(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(requiredColumns))
	for i, cell := range header {
		if i == 0 {
			cell = strings.TrimPrefix(cell, "\ufeff")
		}
		idx[strings.TrimSpace(cell)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return idx, missing
}

func parseRow(rec []string, idx map[string]int, line int) (Entry, *ParseError) {
	for _, col := range requiredColumns {
		if idx[col] >= len(rec) {
			return Entry{}, &ParseError{Line: line, Field: col, Err: errors.New("missing field")}
		}
	}
	rankRaw := strings.TrimSpace(rec[idx[colRank]])
	rank, err := strconv.Atoi(rankRaw)
	if err != nil {
		return Entry{}, &ParseError{Line: line, Field: colRank, Err: err}
	}
	if rank < 1 {
		return Entry{}, &ParseError{Line: line, Field: colRank, Err: fmt.Errorf("rank %d out of range", rank)}
	}
	return Entry{
		Name:        strings.TrimSpace(rec[idx[colName]]),
		Description: strings.TrimSpace(rec[idx[colDesc]]),
		Rank:        rank,
		Usage:       splitUsage(rec[idx[colUsage]]),
	}, nil
}

// splitUsage breaks the comma-separated usage cell into individual
// examples, dropping empties.
func splitUsage(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// sortByRank sorts ascending by rank. The sort is stable so duplicate
// ranks keep their source order.
func sortByRank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
}
