package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/bEhNaM-aLFa/AI-Finance-Bot/dto"
	"github.com/bEhNaM-aLFa/AI-Finance-Bot/utils"
)

// requiredColumns must all be present in an imported table.
var requiredColumns = []string{"Date", "Description", "Amount", "Type"}

// columnIndexes holds the resolved position of each known column.
type columnIndexes struct {
	date        int
	description int
	amount      int
	txType      int
	category    int // -1 when the optional Category column is absent
}

// ImportService reads transaction tables from uploaded CSV and Excel
// files into records.
type ImportService struct{}

func NewImportService() *ImportService {
	return &ImportService{}
}

// ReadTable parses an uploaded spreadsheet into transaction records.
// The file type is picked from the filename extension.
func (s *ImportService) ReadTable(filename string, r io.Reader, today time.Time) ([]dto.TransactionRecord, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return s.readCSV(r, today)
	case ".xlsx":
		// excelize reads OOXML only; legacy .xls is rejected below.
		return s.readExcel(r, today)
	default:
		return nil, fmt.Errorf("%w: %s", dto.ErrUnsupportedFile, ext)
	}
}

func (s *ImportService) readCSV(r io.Reader, today time.Time) ([]dto.TransactionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv row: %w", err)
		}
		rows = append(rows, record)
	}

	return s.rowsToRecords(headers, rows, today)
}

func (s *ImportService) readExcel(r io.Reader, today time.Time) ([]dto.TransactionRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to read header row: sheet is empty")
	}

	return s.rowsToRecords(rows[0], rows[1:], today)
}

// rowsToRecords maps header names to columns and converts every data
// row. A malformed amount cell coerces to 0 rather than dropping the
// row; a missing required column fails the whole import.
func (s *ImportService) rowsToRecords(headers []string, rows [][]string, today time.Time) ([]dto.TransactionRecord, error) {
	cols, err := resolveColumns(headers)
	if err != nil {
		return nil, err
	}

	records := make([]dto.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}

		rec := dto.TransactionRecord{
			Description: strings.TrimSpace(cell(row, cols.description)),
			Amount:      coerceAmount(cell(row, cols.amount)),
			Type:        dto.TransactionType(strings.TrimSpace(cell(row, cols.txType))),
			Date:        parseTableDate(cell(row, cols.date), today),
		}
		if cols.category >= 0 {
			rec.Category = dto.Category(strings.TrimSpace(cell(row, cols.category)))
		}
		records = append(records, rec)
	}

	return records, nil
}

// resolveColumns locates the known columns by case-insensitive header
// match. All four required columns must be present.
func resolveColumns(headers []string) (columnIndexes, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[strings.ToLower(col)]; !ok {
			return columnIndexes{}, fmt.Errorf("%w: %s", dto.ErrMissingColumn, col)
		}
	}

	cols := columnIndexes{
		date:        index["date"],
		description: index["description"],
		amount:      index["amount"],
		txType:      index["type"],
		category:    -1,
	}
	if i, ok := index["category"]; ok {
		cols.category = i
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// coerceAmount parses an amount cell, tolerating Persian digits and
// thousands separators. Anything unparseable becomes 0.
func coerceAmount(raw string) float64 {
	clean := utils.Normalize(strings.TrimSpace(raw))
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, "٬", "")
	val, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return val
}

// parseTableDate reads a numeric date cell, falling back to today the
// same way text extraction does.
func parseTableDate(raw string, today time.Time) dto.Date {
	if date, _, ok := utils.FindNumericDate(utils.Normalize(raw)); ok {
		return date
	}
	return dto.DateOf(today)
}
