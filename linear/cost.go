package linear

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// LeastSquares は正規化済みデータセットに対する最小二乗コストモデル
//
// パラメータベクトル θ = (θ0, θ1, ..., θn) に対して
//
//	cost(θ) = (1/2m) * Σ (θ0 + Σ_j θj*x_j - y)²
//
// とその偏微分を評価する。係数1/2は勾配を簡潔にするための慣例。
// コストと勾配は純粋関数であり、モデルの状態を変更しない。
type LeastSquares struct {
	x *mat.Dense
	y []float64
	m int // サンプル数
	n int // 特徴量数
}

// NewLeastSquares はコストモデルを作成する
//
// Xは m×n の特徴量行列、yは m×1 の目的変数。入力は防御的にコピーされるため、
// 呼び出し側が後から行列を変更しても評価結果は変わらない。
func NewLeastSquares(X, y mat.Matrix) (*LeastSquares, error) {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return nil, errors.NewModelError("NewLeastSquares", "empty data", errors.ErrEmptyData)
	}
	if cy != 1 {
		return nil, errors.NewValueError("NewLeastSquares", "y must be a column vector")
	}
	if ry != r {
		return nil, errors.NewDimensionError("NewLeastSquares", r, ry, 0)
	}

	// 非有限値が混ざっていると勾配降下が発散ではなくNaN化するため先に弾く
	if err := errors.CheckMatrix("NewLeastSquares", X); err != nil {
		return nil, err
	}
	if err := errors.CheckMatrix("NewLeastSquares", y); err != nil {
		return nil, err
	}

	yVals := make([]float64, r)
	for i := 0; i < r; i++ {
		yVals[i] = y.At(i, 0)
	}

	return &LeastSquares{
		x: mat.DenseCopyOf(X),
		y: yVals,
		m: r,
		n: c,
	}, nil
}

// NumSamples はサンプル数mを返す
func (ls *LeastSquares) NumSamples() int { return ls.m }

// NumFeatures は特徴量数nを返す
func (ls *LeastSquares) NumFeatures() int { return ls.n }

// Cost は与えられたパラメータベクトルのコストを計算する
//
// θの次元が 1+特徴量数 と一致しない場合、計算を行わずDimensionErrorを返す。
func (ls *LeastSquares) Cost(theta []float64) (float64, error) {
	if len(theta) != ls.n+1 {
		return 0, errors.NewDimensionError("LeastSquares.Cost", ls.n+1, len(theta), 1)
	}

	// 再現性のためレコード順に逐次加算する
	var sum float64
	for i := 0; i < ls.m; i++ {
		r := ls.residual(theta, i)
		sum += r * r
	}

	return sum / (2 * float64(ls.m)), nil
}

// Gradient は各パラメータに対するコストの偏微分ベクトルを計算する
//
//	grad_0 = (1/m) * Σ (h(x_i) - y_i)
//	grad_j = (1/m) * Σ (h(x_i) - y_i) * x_ij
//
// 戻り値は長さ 1+特徴量数 の新しいスライス。
func (ls *LeastSquares) Gradient(theta []float64) ([]float64, error) {
	if len(theta) != ls.n+1 {
		return nil, errors.NewDimensionError("LeastSquares.Gradient", ls.n+1, len(theta), 1)
	}

	grad := make([]float64, ls.n+1)
	for i := 0; i < ls.m; i++ {
		r := ls.residual(theta, i)
		grad[0] += r
		for j := 0; j < ls.n; j++ {
			grad[j+1] += r * ls.x.At(i, j)
		}
	}
	floats.Scale(1/float64(ls.m), grad)

	return grad, nil
}

// residual は i番目のレコードの予測残差 h(x_i) - y_i を返す
func (ls *LeastSquares) residual(theta []float64, i int) float64 {
	pred := theta[0]
	for j := 0; j < ls.n; j++ {
		pred += theta[j+1] * ls.x.At(i, j)
	}
	return pred - ls.y[i]
}
