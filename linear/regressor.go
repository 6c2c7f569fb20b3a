package linear

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/core/model"
	"github.com/YuminosukeSato/descent/core/parallel"
	"github.com/YuminosukeSato/descent/metrics"
	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const parallelThreshold = 1000

// GDRegressor は勾配降下法で学習するscikit-learn風の線形回帰モデル
//
// 閉形式解（正規方程式）ではなくGradientDescentエンジンを使って係数を求める。
// ハイパーパラメータはOptionで指定し、検証はFit時に行われる。
//
// 使用例:
//
//	reg := linear.NewGDRegressor(linear.WithLearningRate(0.01), linear.WithTolerance(1e-6))
//	err := reg.Fit(X, y)
//	predictions, err := reg.Predict(X)
type GDRegressor struct {
	state *model.StateManager
	opts  []Option

	coef      []float64
	intercept float64
	result    *TrainingResult
}

// NewGDRegressor は新しいGDRegressorを作成する
func NewGDRegressor(opts ...Option) *GDRegressor {
	return &GDRegressor{
		state: model.NewStateManager(),
		opts:  opts,
	}
}

// Fit はモデルを訓練データで学習させる
//
// 呼び出しごとに新しいエンジンを構築するため、同じモデルで再学習できる。
// ハイパーパラメータが不正な場合はValidationErrorを返す。
func (r *GDRegressor) Fit(X, y mat.Matrix) error {
	return r.FitContext(context.Background(), X, y)
}

// FitContext はキャンセル可能なFit
//
// ctxのキャンセルは勾配降下の各イテレーションの先頭で確認される。
func (r *GDRegressor) FitContext(ctx context.Context, X, y mat.Matrix) error {
	start := time.Now()

	gd, err := NewGradientDescent(r.opts...)
	if err != nil {
		return err
	}

	res, err := gd.Run(ctx, X, y)
	if err != nil {
		return err
	}

	rows, cols := X.Dims()
	r.coef = res.Coef
	r.intercept = res.Intercept
	r.result = res
	r.state.SetDimensions(cols, rows)
	r.state.SetFitted()

	log.GetLoggerWithName("linear.regressor").Info("training completed",
		log.ModelNameKey, "GDRegressor",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.IterationKey, res.Iterations,
		log.CostKey, res.FinalCost,
		log.ConvergedKey, res.Converged,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return nil
}

// Predict は入力データに対する予測を行う
func (r *GDRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.state.IsFitted() {
		return nil, errors.NewNotFittedError("GDRegressor", "Predict")
	}

	rows, cols := X.Dims()
	nFeatures, _ := r.state.GetDimensions()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("GDRegressor.Predict", nFeatures, cols, 1)
	}
	if rows == 0 {
		return nil, errors.NewModelError("GDRegressor.Predict", "empty data", errors.ErrEmptyData)
	}

	// 予測: y = X * coef + intercept
	predictions := mat.NewDense(rows, 1, nil)

	// 行ごとに独立した書き込みなので並列化できる
	parallel.ParallelizeWithThreshold(rows, parallelThreshold, func(startRow, endRow int) {
		for i := startRow; i < endRow; i++ {
			pred := r.intercept
			for j := 0; j < cols; j++ {
				pred += X.At(i, j) * r.coef[j]
			}
			predictions.Set(i, 0, pred)
		}
	})

	return predictions, nil
}

// Weights は学習された係数 (θ1, ..., θn) のコピーを返す
func (r *GDRegressor) Weights() []float64 {
	if !r.state.IsFitted() {
		return nil
	}
	weights := make([]float64, len(r.coef))
	copy(weights, r.coef)
	return weights
}

// Intercept は学習された切片θ0を返す
func (r *GDRegressor) Intercept() float64 {
	if !r.state.IsFitted() {
		return 0
	}
	return r.intercept
}

// Score はモデルの決定係数（R²）を計算する
func (r *GDRegressor) Score(X, y mat.Matrix) (float64, error) {
	if !r.state.IsFitted() {
		return 0, errors.NewNotFittedError("GDRegressor", "Score")
	}

	ry, cy := y.Dims()
	if cy != 1 {
		return 0, errors.NewValueError("GDRegressor.Score", "y must be a column vector")
	}

	predictions, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	yVec := mat.NewVecDense(ry, nil)
	for i := 0; i < ry; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}
	predVec := predictions.(*mat.Dense).ColView(0)

	return metrics.R2Score(yVec, predVec)
}

// Result は直近のFitのTrainingResultを返す（未学習の場合はnil）
//
// イテレーション数、最終コスト、コスト履歴などの収束診断に使う。
func (r *GDRegressor) Result() *TrainingResult {
	if !r.state.IsFitted() {
		return nil
	}
	return r.result
}

// IsFitted はモデルが学習済みかどうかを返す
func (r *GDRegressor) IsFitted() bool {
	return r.state.IsFitted()
}

// String はモデルの文字列表現を返す
func (r *GDRegressor) String() string {
	if !r.state.IsFitted() {
		return "GDRegressor(fitted=false)"
	}
	nFeatures, nSamples := r.state.GetDimensions()
	return fmt.Sprintf("GDRegressor(fitted=true, n_features=%d, n_samples=%d)", nFeatures, nSamples)
}
