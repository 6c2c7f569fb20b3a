// Package descent provides batch gradient descent for multivariate linear
// regression, with a scikit-learn-like estimator API.
//
// The pipeline is strictly one-way: a raw dataset is normalized column by
// column, the normalized data is bound to a least-squares cost model, and
// the gradient descent engine iterates until the cost stops improving.
// Identical inputs always produce bit-for-bit identical results.
//
// # Quick Start
//
// Training on normalized data with the estimator facade:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/YuminosukeSato/descent/linear"
//	    "github.com/YuminosukeSato/descent/preprocessing"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	    scaler := preprocessing.NewStandardScalerDefault()
//	    XNorm, err := scaler.FitTransform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    reg := linear.NewGDRegressor(linear.WithLearningRate(0.1))
//	    if err := reg.Fit(XNorm, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    result := reg.Result()
//	    fmt.Printf("converged after %d iterations, cost %.6f\n",
//	        result.Iterations, result.FinalCost)
//	}
//
// The engine itself is available directly when the estimator surface is not
// needed:
//
//	gd, err := linear.NewGradientDescent(
//	    linear.WithLearningRate(0.01),
//	    linear.WithTolerance(1e-6),
//	    linear.WithMaxIter(10000),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := gd.Run(ctx, X, y)
//
// # Packages
//
//   - linear: the cost model, the gradient descent engine, and GDRegressor
//   - preprocessing: StandardScaler (z-score) and MinMaxScaler
//   - dataset: named-column tables, CSV loading, descriptive statistics
//   - metrics: regression metrics (MSE, RMSE, MAE, R², MAPE)
//   - visualization: cost-versus-iteration convergence charts
//   - pkg/errors: typed errors with stack traces and the warning hook
//   - pkg/log: structured JSON logging
//   - core/model: estimator interfaces and fitted-state plumbing
//   - core/parallel: row-parallel helpers for element-wise transforms
//
// # Determinism and Concurrency
//
// The training loop is sequential: gradients and costs accumulate in record
// order, so two runs over the same data yield identical parameter
// trajectories. Parallelism is confined to element-wise operations
// (normalization, prediction) where partition order cannot change results.
// Training accepts a context and stops between iterations when it is
// canceled.
package descent
