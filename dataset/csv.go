package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// ReadCSV はCSVストリームからDatasetを読み込む
//
// 1行目はヘッダーとして扱われ、最終列が目標、それ以外が特徴量になる。
// すべてのフィールドは数値として解釈される。
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewValueError("dataset.ReadCSV", "missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading csv header")
	}
	if len(header) < 2 {
		return nil, errors.NewValueError("dataset.ReadCSV",
			"need at least one feature column and a target column")
	}

	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}
	n := len(names) - 1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv records")
	}
	if len(records) == 0 {
		return nil, errors.NewModelError("dataset.ReadCSV", "empty data", errors.ErrEmptyData)
	}

	X := mat.NewDense(len(records), n, nil)
	y := make([]float64, len(records))
	for i, record := range records {
		// フィールド数の一致はcsv.Readerが保証する
		for j, field := range record {
			v, parseErr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if parseErr != nil {
				// ヘッダー行を含めた1始まりの行番号で報告する
				return nil, errors.Wrapf(parseErr, "parsing csv row %d, column %q", i+2, names[j])
			}
			if j < n {
				X.Set(i, j, v)
			} else {
				y[i] = v
			}
		}
	}

	return New(names[:n], names[n], X, y)
}

// ReadCSVFile はCSVファイルからDatasetを読み込む
func ReadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() { _ = f.Close() }()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ds, nil
}
