package dataset

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	input := "size,nbedrooms,price\n2104,3,399900\n1600,3,329900\n"

	ds, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if got := ds.NumRecords(); got != 2 {
		t.Errorf("NumRecords() = %d, want 2", got)
	}
	if got := ds.FeatureNames(); len(got) != 2 || got[0] != "size" || got[1] != "nbedrooms" {
		t.Errorf("FeatureNames() = %v, want [size nbedrooms]", got)
	}
	if got := ds.TargetName(); got != "price" {
		t.Errorf("TargetName() = %q, want %q", got, "price")
	}

	X, y := ds.Split()
	if got := X.At(1, 0); got != 1600 {
		t.Errorf("Features().At(1,0) = %v, want 1600", got)
	}
	if got := y.AtVec(0); got != 399900 {
		t.Errorf("Target().AtVec(0) = %v, want 399900", got)
	}
}

func TestReadCSV_WhitespaceAndNegatives(t *testing.T) {
	input := " x , t \n -1.5 , 2.25 \n"

	ds, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if got := ds.FeatureNames()[0]; got != "x" {
		t.Errorf("FeatureNames()[0] = %q, want %q", got, "x")
	}
	if got := ds.Features().At(0, 0); got != -1.5 {
		t.Errorf("Features().At(0,0) = %v, want -1.5", got)
	}
	if got := ds.Target().AtVec(0); got != 2.25 {
		t.Errorf("Target().AtVec(0) = %v, want 2.25", got)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		checkErr func(t *testing.T, err error)
	}{
		{
			name:  "empty input",
			input: "",
			checkErr: func(t *testing.T, err error) {
				var valueErr *errors.ValueError
				if !errors.As(err, &valueErr) {
					t.Errorf("expected ValueError, got %v", err)
				}
			},
		},
		{
			name:  "single column header",
			input: "price\n100\n",
			checkErr: func(t *testing.T, err error) {
				var valueErr *errors.ValueError
				if !errors.As(err, &valueErr) {
					t.Errorf("expected ValueError, got %v", err)
				}
			},
		},
		{
			name:  "header only",
			input: "size,price\n",
			checkErr: func(t *testing.T, err error) {
				if !errors.Is(err, errors.ErrEmptyData) {
					t.Errorf("expected ErrEmptyData, got %v", err)
				}
			},
		},
		{
			name:  "non-numeric field reports position",
			input: "size,price\n2104,399900\noops,329900\n",
			checkErr: func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected parse error, got nil")
				}
				msg := err.Error()
				if !strings.Contains(msg, "row 3") || !strings.Contains(msg, `"size"`) {
					t.Errorf("error %q should name row 3 and column \"size\"", msg)
				}
			},
		},
		{
			name:  "inconsistent field count",
			input: "size,price\n2104\n",
			checkErr: func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			},
		},
		{
			name:  "NaN is rejected as non-finite",
			input: "size,price\n2104,NaN\n",
			checkErr: func(t *testing.T, err error) {
				var instErr *errors.NumericalInstabilityError
				if !errors.As(err, &instErr) {
					t.Errorf("expected NumericalInstabilityError, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			tt.checkErr(t, err)
		})
	}
}

func TestReadCSVFile_Housing(t *testing.T) {
	ds, err := ReadCSVFile(filepath.Join("testdata", "housing.csv"))
	if err != nil {
		t.Fatalf("ReadCSVFile() error = %v", err)
	}

	if got := ds.NumRecords(); got != 47 {
		t.Errorf("NumRecords() = %d, want 47", got)
	}
	if got := ds.NumFeatures(); got != 2 {
		t.Errorf("NumFeatures() = %d, want 2", got)
	}
	if got := ds.FeatureNames(); got[0] != "size" || got[1] != "nbedrooms" {
		t.Errorf("FeatureNames() = %v, want [size nbedrooms]", got)
	}
	if got := ds.TargetName(); got != "price" {
		t.Errorf("TargetName() = %q, want %q", got, "price")
	}

	X, y := ds.Split()
	if got := X.At(0, 0); got != 2104 {
		t.Errorf("first record size = %v, want 2104", got)
	}
	if got := y.AtVec(46); got != 239500 {
		t.Errorf("last record price = %v, want 239500", got)
	}

	// sizeカラムの既知の統計量
	summaries := ds.Describe()
	size := summaries[0]
	if math.Abs(size.Mean-2000.680851) > 1e-4 {
		t.Errorf("size.Mean = %v, want ≈2000.680851", size.Mean)
	}
	if math.Abs(size.Std-794.702354) > 1e-4 {
		t.Errorf("size.Std = %v, want ≈794.702354", size.Std)
	}
	if size.Min != 852 || size.Max != 4478 {
		t.Errorf("size range = [%v, %v], want [852, 4478]", size.Min, size.Max)
	}

	bedrooms := summaries[1]
	if bedrooms.Min != 1 || bedrooms.Max != 5 {
		t.Errorf("nbedrooms range = [%v, %v], want [1, 5]", bedrooms.Min, bedrooms.Max)
	}

	price := summaries[2]
	if price.Min != 169900 || price.Max != 699900 {
		t.Errorf("price range = [%v, %v], want [169900, 699900]", price.Min, price.Max)
	}
}

func TestReadCSVFile_NotFound(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join("testdata", "no_such_file.csv"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "no_such_file.csv") {
		t.Errorf("error %q should name the missing file", err.Error())
	}
}
