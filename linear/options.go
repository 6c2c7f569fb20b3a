package linear

// Option is a function that configures GradientDescent
type Option func(*GradientDescent)

// WithLearningRate sets the step size α used for every parameter update
func WithLearningRate(alpha float64) Option {
	return func(gd *GradientDescent) {
		gd.learningRate = alpha
	}
}

// WithTolerance sets the convergence threshold ε on the absolute cost change
// between successive iterations
func WithTolerance(tol float64) Option {
	return func(gd *GradientDescent) {
		gd.tolerance = tol
	}
}

// WithMaxIter sets an optional iteration cap. Zero (the default) disables the
// cap; a run that hits the cap stops with Converged=false and a warning
func WithMaxIter(n int) Option {
	return func(gd *GradientDescent) {
		gd.maxIter = n
	}
}

// WithInitialParams sets the starting parameter vector (intercept first,
// then one slope per feature). The slice is copied. Defaults to all zeros
func WithInitialParams(theta []float64) Option {
	return func(gd *GradientDescent) {
		if theta == nil {
			gd.initialTheta = nil
			return
		}
		gd.initialTheta = append([]float64(nil), theta...)
	}
}

// WithCostHistory enables recording of the cost after every iteration in the
// TrainingResult. Off by default to keep long runs allocation-free
func WithCostHistory(record bool) Option {
	return func(gd *GradientDescent) {
		gd.recordHistory = record
	}
}
