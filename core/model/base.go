package model

// fitState は推定器の学習状態
type fitState uint8

const (
	unfitted fitState = iota
	fitted
)

// BaseEstimator は学習状態の追跡を提供する推定器の共通基盤。
// スケーラーのような単一ゴルーチンで使う軽量な変換器が埋め込みで利用する。
// 並行アクセスの保護や次元メタデータが必要なモデルはStateManagerを使う。
type BaseEstimator struct {
	state fitState
}

// IsFitted はFitが成功した後かどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == fitted
}

// SetFitted は学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = fitted
}

// Reset は未学習状態へ戻す。
// 再学習の冒頭で呼ぶことで、失敗したFitの後に古い統計のまま
// 学習済みと誤認されることを防ぐ。
func (e *BaseEstimator) Reset() {
	e.state = unfitted
}
