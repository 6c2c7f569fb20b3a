// Package log defines standard attribute keys for training and preprocessing
// operations.
//
// Using these keys consistently across packages keeps the JSON output
// analyzable: the same field name always carries the same meaning, whether it
// was logged by the optimizer, the scaler, or a model facade. The keys follow
// a hierarchical naming convention ("data.samples", "training.iteration") so
// log pipelines can filter on prefixes.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of estimator emitting the record.
	// Examples: "GDRegressor", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "fit_transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "linear.gradient_descent", "preprocessing.scaler"
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of records (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// TargetsKey is the number of target variables, usually 1.
	TargetsKey = "data.targets"
)

// Training progress and hyperparameters.
const (
	// IterationKey is the current iteration of an iterative optimizer.
	IterationKey = "training.iteration"

	// CostKey is the objective value at the current parameters.
	CostKey = "training.cost"

	// CostDeltaKey is the absolute cost change since the previous iteration,
	// the quantity compared against the convergence tolerance.
	CostDeltaKey = "training.cost_delta"

	// ConvergedKey records whether the optimizer met its tolerance.
	ConvergedKey = "training.converged"

	// LearningRateKey is the gradient descent step size.
	LearningRateKey = "hyperparams.learning_rate"

	// ToleranceKey is the convergence threshold on the cost delta.
	ToleranceKey = "hyperparams.tolerance"

	// MaxIterKey is the iteration cap, 0 meaning unbounded.
	MaxIterKey = "hyperparams.max_iter"
)

// Performance and evaluation.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2ScoreKey records the coefficient of determination for regression.
	R2ScoreKey = "metrics.r2_score"
)

// Error context.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "DIMENSION_MISMATCH", "NOT_FITTED", "CONVERGENCE_FAILURE"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the error.
	// Examples: "ValidationError", "NumericalInstabilityError"
	ErrorTypeKey = "error.type"

	// SuggestionKey carries a hint for resolving the problem.
	// Examples: "Reduce the learning rate", "Increase max_iter"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values for common operations.
const (
	OperationFit          = "fit"
	OperationPredict      = "predict"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationScore        = "score"

	ErrorNotFitted            = "NOT_FITTED"
	ErrorDimensionMismatch    = "DIMENSION_MISMATCH"
	ErrorEmptyData            = "EMPTY_DATA"
	ErrorInvalidInput         = "INVALID_INPUT"
	ErrorConvergence          = "CONVERGENCE_FAILURE"
	ErrorDegenerateFeature    = "DEGENERATE_FEATURE"
	ErrorNumericalInstability = "NUMERICAL_INSTABILITY"
)
