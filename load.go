package chartkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// rawPoint and rawSeries mirror DataPoint and Series with an untyped value,
// so strings and nulls decode instead of failing the whole file.
type rawPoint struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value any    `json:"value" yaml:"value" toml:"value"`
}

type rawSeries struct {
	Key    string     `json:"key" yaml:"key" toml:"key"`
	Values []rawPoint `json:"values" yaml:"values" toml:"values"`
}

// rawDocument is the TOML layout, which cannot hold a top-level array:
//
//	[[series]]
//	key = "A"
//	[[series.values]]
//	key = "X"
//	value = 10
type rawDocument struct {
	Series []rawSeries `json:"series" yaml:"series" toml:"series"`
}

// LoadDataset reads a dataset file, choosing the decoder by extension:
// .json, .yaml/.yml, .toml or .xlsx.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	ds, err := DecodeDataset(bytes.NewReader(data), formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return ds, nil
}

// DecodeDataset decodes a dataset in the given format: "json", "yaml",
// "toml" or "xlsx".
//
// JSON and YAML hold a list of series, or an object with a "series" list.
// Non-numeric values decode as 0; numeric strings are parsed.
//
// A workbook's first sheet is read as a table: the first row holds column
// keys, the first column holds series keys, and an empty cell means the
// series has no value for that column.
func DecodeDataset(r io.Reader, format string) (Dataset, error) {
	switch format {
	case "xlsx":
		return decodeWorkbook(r)
	case "json", "yaml", "yml", "toml":
	default:
		return nil, fmt.Errorf("dataset format %q: %w", format, ErrUnknownFormat)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var doc rawDocument
	switch format {
	case "json":
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err = json.Unmarshal(trimmed, &doc.Series)
		} else {
			err = json.Unmarshal(trimmed, &doc)
		}
	case "yaml", "yml":
		var node yaml.Node
		if err = yaml.Unmarshal(data, &node); err == nil && len(node.Content) > 0 {
			if node.Content[0].Kind == yaml.SequenceNode {
				err = node.Content[0].Decode(&doc.Series)
			} else {
				err = node.Content[0].Decode(&doc)
			}
		}
	case "toml":
		_, err = toml.Decode(string(data), &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s dataset: %w", format, err)
	}
	return doc.dataset(), nil
}

func (d rawDocument) dataset() Dataset {
	ds := make(Dataset, len(d.Series))
	for i, rs := range d.Series {
		s := Series{Key: rs.Key, Values: make([]DataPoint, len(rs.Values))}
		for j, rp := range rs.Values {
			s.Values[j] = DataPoint{Key: rp.Key, Value: toFloat(rp.Value)}
		}
		ds[i] = s
	}
	return ds
}

// toFloat converts a decoded scalar to a number. Anything that is not a
// number or a numeric string becomes 0.
func toFloat(v any) float64 {
	switch v := v.(type) {
	case float64:
		return cleanValue(v)
	case float32:
		return cleanValue(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return cleanValue(f)
	case string:
		return parseCell(v)
	}
	return 0
}

func parseCell(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return cleanValue(f)
}

func decodeWorkbook(r io.Reader) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook: %w", ErrEmptyDataset)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Dataset{}, nil
	}

	header := rows[0]
	var ds Dataset
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		s := Series{Key: strings.TrimSpace(row[0])}
		for j := 1; j < len(header) && j < len(row); j++ {
			cell := strings.TrimSpace(row[j])
			if cell == "" {
				continue
			}
			s.Values = append(s.Values, DataPoint{Key: header[j], Value: parseCell(cell)})
		}
		ds = append(ds, s)
	}
	return ds, nil
}

// WriteWorkbook writes ds to w as a workbook in the layout DecodeDataset
// reads: column keys across the first row, series keys down the first
// column.
func WriteWorkbook(w io.Writer, ds Dataset) error {
	sum, err := Summarize(ds)
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for j, col := range sum.ColumnKeys {
		if err := setCell(f, sheet, j+2, 1, col); err != nil {
			return err
		}
	}
	for i, s := range ds {
		if err := setCell(f, sheet, 1, i+2, s.Key); err != nil {
			return err
		}
		pts, _ := s.Points()
		for _, p := range pts {
			j := indexOf(sum.ColumnKeys, p.Key)
			if err := setCell(f, sheet, j+2, i+2, p.Value); err != nil {
				return err
			}
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("write workbook cell %s: %w", cell, err)
	}
	return nil
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
