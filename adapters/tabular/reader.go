package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"schoolmap/domain/schools"
	"schoolmap/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader reads a tabular file (CSV or Excel) into a schools.Table.
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader for the given path. The format is picked
// from the file extension; anything that is not .xlsx is treated as CSV.
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadTable parses the file using the header-row convention: the first row
// supplies column names, every following row becomes a Record zipped
// against those names, in file order.
//
// A missing file is reported with an error satisfying
// errors.Is(err, fs.ErrNotExist); callers decide whether that is fatal.
func (r *DataReader) ReadTable() (*schools.Table, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, err
	}

	if r.fileType == "xlsx" {
		return r.readExcel()
	}
	return r.readCSV()
}

func (r *DataReader) readCSV() (*schools.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows shorter or longer than the header are passed through as-is.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}

	return buildTable(rows), nil
}

func (r *DataReader) readExcel() (*schools.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}

	return buildTable(rows), nil
}

// buildTable converts raw string rows into a Table. A file with no rows at
// all, or a header row only, yields an empty dataset rather than an error.
func buildTable(rows [][]string) *schools.Table {
	if len(rows) == 0 {
		return &schools.Table{Rows: schools.Dataset{}}
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		if i == 0 {
			// utf-8-sig files carry a byte-order mark in the first cell
			header = strings.TrimPrefix(header, "\ufeff")
		}
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make(schools.Dataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(schools.Record, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				record[headers[j]] = cell
			}
		}
		dataRows = append(dataRows, record)
	}

	return &schools.Table{
		Headers: headers,
		Rows:    dataRows,
	}
}
