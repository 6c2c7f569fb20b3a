// Package visualization は学習結果の可視化を提供する。
//
// コアの学習パイプラインはこのパッケージに依存しない。
package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/descent/pkg/errors"
)

// CostCurve はコスト履歴からイテレーションごとの収束曲線を作成する
//
// 履歴はWithCostHistory(true)を指定した学習結果のCostHistoryを渡す。
func CostCurve(history []float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.NewValueError("visualization.CostCurve",
			"empty cost history (train with WithCostHistory(true))")
	}

	p := plot.New()
	p.Title.Text = "Gradient Descent Convergence"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Cost"

	pts := make(plotter.XYs, len(history))
	for i, cost := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = cost
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "building cost curve")
	}
	line.LineStyle.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid())
	p.Add(line)

	return p, nil
}

// SaveCostCurve は収束曲線をファイルに保存する
//
// 画像形式は拡張子（.png、.svg、.pdfなど）から決まる。
func SaveCostCurve(history []float64, path string) error {
	p, err := CostCurve(history)
	if err != nil {
		return err
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving cost curve to %s", path)
	}
	return nil
}
