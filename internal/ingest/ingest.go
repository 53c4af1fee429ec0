// Package ingest loads comparison and scoring tables from input files.
//
// Two sources are supported: an .xlsx workbook with one sheet per table, and
// a directory of CSV files with one file per table, the file stem being the
// table name. Both feed the same grid parser.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/huangsam/prioritize/internal/contract"
	"github.com/huangsam/prioritize/schema"
)

// NewSource picks the table source matching the input path: a directory of
// CSV files or an .xlsx workbook.
func NewSource(path string) (contract.TableSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path %q: %w", path, err)
	}
	if info.IsDir() {
		return &csvSource{dir: path}, nil
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return &xlsxSource{path: path}, nil
	}
	return nil, fmt.Errorf("input path %q: want a directory of CSV files or an .xlsx workbook", path)
}

// csvSource reads one table per CSV file from a directory.
type csvSource struct {
	dir string
}

// Load reads every recognized table from the directory. Files with other
// extensions or unrecognized names are skipped.
func (s *csvSource) Load(ctx context.Context) (*schema.InputSet, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %q: %w", s.dir, err)
	}

	grids := make(map[string][][]string)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		grid, err := readCSVGrid(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading table %q: %w", name, err)
		}
		grids[name] = grid
	}
	return parseGrids(grids)
}

// readCSVGrid reads a whole CSV file as a string grid. Rows may have varying
// lengths; comparison tables leave lower-triangle cells out entirely.
func readCSVGrid(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// xlsxSource reads one table per sheet from an .xlsx workbook.
type xlsxSource struct {
	path string
}

// Load reads every recognized sheet from the workbook.
func (s *xlsxSource) Load(ctx context.Context) (*schema.InputSet, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %q: %w", s.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			contract.LogWarn("closing workbook", err)
		}
	}()

	grids := make(map[string][][]string)
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		grids[sheet] = rows
	}
	return parseGrids(grids)
}
