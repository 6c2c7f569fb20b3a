// このファイルはestimator.goの基本インターフェースを組み合わせた
// 複合インターフェースを定義する
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Scorer はモデルの性能スコアを計算できるモデルのインターフェース
type Scorer interface {
	// Score は予測の決定係数R²を返す
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor は回帰モデルのインターフェース
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// ParameterGetter はハイパーパラメータを公開するモデルのインターフェース
type ParameterGetter interface {
	// GetParams はモデルのハイパーパラメータを返す
	GetParams() map[string]interface{}
}
