package linear

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/descent/pkg/errors"
	"github.com/YuminosukeSato/descent/pkg/log"
)

// デフォルトのハイパーパラメータ
const (
	// DefaultLearningRate はデフォルトの学習率α
	DefaultLearningRate = 0.01

	// DefaultTolerance はデフォルトの収束閾値ε
	DefaultTolerance = 1e-6
)

// 進捗のDebugログを出す間隔（イテレーション数）
const progressLogInterval = 100

// GradientDescent はバッチ勾配降下法による線形回帰の学習エンジン
//
// 収束判定は連続するイテレーション間のコスト変化量 |J(θ_i) - J(θ_{i-1})| が
// 閾値ε以下になったかどうかで行う。勾配ノルムによる判定ではないため、
// 緩やかなプラトーで早期終了する可能性がある点は仕様として保持している。
type GradientDescent struct {
	learningRate  float64
	tolerance     float64
	maxIter       int
	initialTheta  []float64
	recordHistory bool
}

// NewGradientDescent は勾配降下エンジンを作成する
//
// デフォルトは学習率0.01、収束閾値1e-6、イテレーション上限なし。
// 不正なハイパーパラメータはValidationErrorとなる。
func NewGradientDescent(opts ...Option) (*GradientDescent, error) {
	gd := &GradientDescent{
		learningRate: DefaultLearningRate,
		tolerance:    DefaultTolerance,
	}
	for _, opt := range opts {
		opt(gd)
	}

	if !(gd.learningRate > 0) || math.IsInf(gd.learningRate, 0) {
		return nil, errors.NewValidationError("learning_rate", "must be a positive finite number", gd.learningRate)
	}
	if gd.tolerance < 0 || math.IsNaN(gd.tolerance) || math.IsInf(gd.tolerance, 0) {
		return nil, errors.NewValidationError("tolerance", "must be a non-negative finite number", gd.tolerance)
	}
	if gd.maxIter < 0 {
		return nil, errors.NewValidationError("max_iter", "must be non-negative (0 disables the cap)", gd.maxIter)
	}

	return gd, nil
}

// TrainingResult は1回の学習の最終状態
//
// 呼び出し側が収束の質を判断できるよう、最終コストと最後のコスト変化量も含む。
type TrainingResult struct {
	// Theta は全パラメータベクトル (θ0, θ1, ..., θn)
	Theta []float64

	// Intercept は切片θ0
	Intercept float64

	// Coef は特徴量ごとの係数 (θ1, ..., θn)
	Coef []float64

	// Iterations は実行されたイテレーション数
	Iterations int

	// FinalCost は最終パラメータでのコスト
	FinalCost float64

	// LastDelta は最後のイテレーションでのコスト変化量
	LastDelta float64

	// Converged はコスト変化量が閾値以下になって停止したかどうか。
	// イテレーション上限で停止した場合はfalse
	Converged bool

	// CostHistory は各イテレーション後のコスト（WithCostHistory指定時のみ）
	CostHistory []float64
}

// Run は正規化済みデータに対して勾配降下ループを実行する
//
// 各イテレーションは以下の順で進む:
//  1. 現在のθのスナップショットから全偏微分を計算する（同時更新）
//  2. θ'_k = θ_k - α*grad_k を別バッファに書き、θを一括置換する
//  3. 新しいθでコストを評価し、前回コストとの差分で収束判定する
//
// コストまたは勾配が非有限値になった場合はNumericalInstabilityErrorで
// 即座に失敗する。イテレーション上限に達した場合はConvergenceWarningを
// 発行し、Converged=falseの結果を返す（エラーにはしない）。
// ctxのキャンセルは各イテレーションの先頭で確認される。
func (gd *GradientDescent) Run(ctx context.Context, X, y mat.Matrix) (result *TrainingResult, err error) {
	defer errors.Recover(&err, "GradientDescent.Run")

	ls, err := NewLeastSquares(X, y)
	if err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("linear.gradient_descent")

	n := ls.NumFeatures()
	theta := make([]float64, n+1)
	if gd.initialTheta != nil {
		if len(gd.initialTheta) != n+1 {
			return nil, errors.NewDimensionError("GradientDescent.Run", n+1, len(gd.initialTheta), 1)
		}
		copy(theta, gd.initialTheta)
	}

	var history []float64
	if gd.recordHistory {
		history = make([]float64, 0, 256)
	}

	// 初回のイテレーションが必ず実行されるよう、前回コストは+∞から始める
	prevCost := math.Inf(1)
	cost := math.Inf(1)
	delta := math.Inf(1)
	iterations := 0
	converged := false
	next := make([]float64, len(theta))

	for {
		// キャンセル確認は各イテレーションの先頭で行う
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "GradientDescent.Run: training interrupted")
		}

		if gd.maxIter > 0 && iterations >= gd.maxIter {
			errors.Warn(errors.NewConvergenceWarning("GradientDescent", iterations,
				fmt.Sprintf("cost delta %.3g did not reach tolerance %.3g", delta, gd.tolerance)))
			logger.Warn("iteration cap reached before convergence",
				log.IterationKey, iterations,
				log.CostDeltaKey, delta,
				log.ToleranceKey, gd.tolerance,
			)
			break
		}

		grad, gradErr := ls.Gradient(theta)
		if gradErr != nil {
			return nil, gradErr
		}
		if instErr := errors.CheckVector("GradientDescent.Run", grad); instErr != nil {
			return nil, instErr
		}

		// 同時更新: 全成分を同じθスナップショットの勾配で計算してから一括で置き換える
		for k := range theta {
			next[k] = theta[k] - gd.learningRate*grad[k]
		}
		copy(theta, next)

		cost, err = ls.Cost(theta)
		if err != nil {
			return nil, err
		}
		if instErr := errors.CheckScalar("GradientDescent.Run", cost); instErr != nil {
			return nil, instErr
		}

		iterations++
		delta = math.Abs(cost - prevCost)
		prevCost = cost

		if gd.recordHistory {
			history = append(history, cost)
		}

		if iterations%progressLogInterval == 0 && logger.Enabled(ctx, log.LevelDebug) {
			logger.Debug("optimizer progress",
				log.IterationKey, iterations,
				log.CostKey, cost,
				log.CostDeltaKey, delta,
			)
		}

		if delta <= gd.tolerance {
			converged = true
			break
		}
	}

	coef := make([]float64, n)
	copy(coef, theta[1:])

	return &TrainingResult{
		Theta:       theta,
		Intercept:   theta[0],
		Coef:        coef,
		Iterations:  iterations,
		FinalCost:   cost,
		LastDelta:   delta,
		Converged:   converged,
		CostHistory: history,
	}, nil
}
