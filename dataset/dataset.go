// Package dataset は回帰用の名前付き数値テーブルを提供する。
//
// テーブルは特徴量列（先頭からn列）と目標列（最終列）からなる不変の
// m×(n+1)行列として保持される。すべてのアクセサはコピーを返すため、
// 呼び出し側の変更がデータセットに影響することはない。
//
// 正規化などの変換はTableで全列を取り出し、変換結果をWithTableで
// 新しいデータセットとして再構成する形で行う。
package dataset

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// Dataset は特徴量列と目標列を持つ不変のテーブル
type Dataset struct {
	featureNames []string
	targetName   string

	// table は m×(n+1) 行列（特徴量n列、最終列が目標）
	table *mat.Dense
}

// New は特徴量行列と目標値から新しいDatasetを作成する
//
// 特徴量名の数はXの列数と一致し、yの長さはXの行数と一致しなければ
// ならない。すべての値は有限である必要がある。
func New(featureNames []string, targetName string, X mat.Matrix, y []float64) (*Dataset, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	if len(featureNames) != c {
		return nil, errors.NewValueError("dataset.New",
			fmt.Sprintf("got %d feature names for %d columns", len(featureNames), c))
	}
	if targetName == "" {
		return nil, errors.NewValueError("dataset.New", "target name must not be empty")
	}
	if len(y) != r {
		return nil, errors.NewDimensionError("dataset.New", r, len(y), 0)
	}

	if err := errors.CheckMatrix("dataset.New", X); err != nil {
		return nil, err
	}
	if err := errors.CheckVector("dataset.New", y); err != nil {
		return nil, err
	}

	table := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			table.Set(i, j, X.At(i, j))
		}
		table.Set(i, c, y[i])
	}

	return &Dataset{
		featureNames: append([]string(nil), featureNames...),
		targetName:   targetName,
		table:        table,
	}, nil
}

// NumRecords はレコード数を返す
func (d *Dataset) NumRecords() int {
	r, _ := d.table.Dims()
	return r
}

// NumFeatures は特徴量の数を返す
func (d *Dataset) NumFeatures() int {
	return len(d.featureNames)
}

// FeatureNames は特徴量名のコピーを返す
func (d *Dataset) FeatureNames() []string {
	return append([]string(nil), d.featureNames...)
}

// TargetName は目標列の名前を返す
func (d *Dataset) TargetName() string {
	return d.targetName
}

// Features は特徴量行列（m×n）のコピーを返す
func (d *Dataset) Features() *mat.Dense {
	r, _ := d.table.Dims()
	n := len(d.featureNames)

	X := mat.NewDense(r, n, nil)
	X.Copy(d.table.Slice(0, r, 0, n))
	return X
}

// Target は目標列のコピーを返す
func (d *Dataset) Target() *mat.VecDense {
	r, c := d.table.Dims()

	y := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		y.SetVec(i, d.table.At(i, c-1))
	}
	return y
}

// Split は特徴量行列と目標ベクトルのコピーを返す
func (d *Dataset) Split() (*mat.Dense, *mat.VecDense) {
	return d.Features(), d.Target()
}

// Table は全列（特徴量と目標）を含むm×(n+1)行列のコピーを返す
//
// 全列を一括で正規化する場合に使う。
func (d *Dataset) Table() *mat.Dense {
	return mat.DenseCopyOf(d.table)
}

// WithTable は同じ列名で新しい値を持つDatasetを作成する
//
// 正規化後のテーブルからデータセットを再構成するためのコンストラクタ。
// 列数は元のデータセットと一致しなければならない。
func (d *Dataset) WithTable(table mat.Matrix) (*Dataset, error) {
	r, c := table.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("dataset.WithTable", "empty data", errors.ErrEmptyData)
	}
	if want := len(d.featureNames) + 1; c != want {
		return nil, errors.NewDimensionError("dataset.WithTable", want, c, 1)
	}
	if err := errors.CheckMatrix("dataset.WithTable", table); err != nil {
		return nil, err
	}

	return &Dataset{
		featureNames: append([]string(nil), d.featureNames...),
		targetName:   d.targetName,
		table:        mat.DenseCopyOf(table),
	}, nil
}

// ColumnSummary は1列分の記述統計
type ColumnSummary struct {
	Name string
	Mean float64
	// Std は不偏標準偏差（n-1で割る）
	Std float64
	Min float64
	Max float64
}

// Describe は全列（特徴量と目標）の記述統計を列順に返す
func (d *Dataset) Describe() []ColumnSummary {
	r, c := d.table.Dims()

	summaries := make([]ColumnSummary, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, d.table)
		mean, std := stat.MeanStdDev(col, nil)

		summaries[j] = ColumnSummary{
			Name: d.columnName(j),
			Mean: mean,
			Std:  std,
			Min:  floats.Min(col),
			Max:  floats.Max(col),
		}
	}
	return summaries
}

// String はデータセットの文字列表現を返す
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset(records=%d, features=[%s], target=%s)",
		d.NumRecords(), strings.Join(d.featureNames, " "), d.targetName)
}

func (d *Dataset) columnName(j int) string {
	if j < len(d.featureNames) {
		return d.featureNames[j]
	}
	return d.targetName
}
