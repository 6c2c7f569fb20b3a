package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "descent: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "descent: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name string
		op   string
		exp  int
		got  int
		axis int
		want string
	}{
		{
			name: "row mismatch",
			op:   "Fit",
			exp:  47,
			got:  12,
			axis: 0,
			want: "descent: Fit: dimension mismatch on axis 0 (rows). Expected 47, got 12",
		},
		{
			name: "feature mismatch",
			op:   "Predict",
			exp:  2,
			got:  3,
			axis: 1,
			want: "descent: Predict: dimension mismatch on axis 1 (features). Expected 2, got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError(tt.op, tt.exp, tt.got, tt.axis)

			if err.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.want)
			}

			// DimensionError型にキャスト可能か確認
			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Error("Error should be castable to *DimensionError")
			}
			if dimErr.Expected != tt.exp || dimErr.Got != tt.got {
				t.Errorf("Expected/Got = %d/%d, want %d/%d", dimErr.Expected, dimErr.Got, tt.exp, tt.got)
			}
		})
	}
}

func TestNewDegenerateFeatureError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		column  int
		colName string
		want    string
	}{
		{
			name:    "named column",
			op:      "StandardScaler.Fit",
			column:  1,
			colName: "bedrooms",
			want:    `descent: StandardScaler.Fit: feature "bedrooms" (column 1) has zero standard deviation; cannot normalize a constant column`,
		},
		{
			name:   "anonymous column",
			op:     "StandardScaler.Fit",
			column: 0,
			want:   "descent: StandardScaler.Fit: column 0 has zero standard deviation; cannot normalize a constant column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDegenerateFeatureError(tt.op, tt.column, tt.colName)

			if err.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.want)
			}

			// DegenerateFeatureError型にキャスト可能か確認
			var degErr *DegenerateFeatureError
			if !As(err, &degErr) {
				t.Error("Error should be castable to *DegenerateFeatureError")
			}
			if degErr.Column != tt.column {
				t.Errorf("Column = %d, want %d", degErr.Column, tt.column)
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("StandardScaler", "Transform")

	// 基本的なエラーメッセージの確認
	want := "descent: StandardScaler: this model is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("learning_rate", "must be positive", -0.5)

	want := "descent: validation failed for parameter 'learning_rate': must be positive (got: -0.5)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ValidationError型にキャスト可能か確認
	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "learning_rate" {
		t.Errorf("ParamName = %v, want learning_rate", valErr.ParamName)
	}
}

func TestNewValueError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		message string
		wantMsg string
	}{
		{
			name:    "too few samples",
			op:      "StandardScaler.Fit",
			message: "at least 2 samples are required, got 1",
			wantMsg: "descent: StandardScaler.Fit: at least 2 samples are required, got 1",
		},
		{
			name:    "bad parameter",
			op:      "SetParam",
			message: "n_components: 0",
			wantMsg: "descent: SetParam: n_components: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValueError(tt.op, tt.message)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// ValueError型にキャスト可能か確認
			var valErr *ValueError
			if !As(err, &valErr) {
				t.Error("Error should be castable to *ValueError")
			}
		})
	}
}

func TestNewConvergenceWarning(t *testing.T) {
	warn := NewConvergenceWarning("GradientDescent", 1000, "cost delta still above tolerance")

	// 基本的なエラーメッセージの確認
	want := "GradientDescent failed to converge after 1000 iterations: cost delta still above tolerance"
	if warn.Error() != want {
		t.Errorf("Error() = %v, want %v", warn.Error(), want)
	}

	// メッセージ省略時のデフォルト文面
	warn = NewConvergenceWarning("GradientDescent", 500, "")
	if !strings.Contains(warn.Error(), "Consider increasing max_iter") {
		t.Errorf("Error() = %v, want default advice", warn.Error())
	}
}

func TestWarningHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(func(w error) {})

	Warn(NewConvergenceWarning("GradientDescent", 10, ""))
	Warn(NewConvergenceWarning("GradientDescent", 20, ""))

	if len(captured) != 2 {
		t.Fatalf("captured %d warnings, want 2", len(captured))
	}

	var convWarn *ConvergenceWarning
	if !As(captured[0], &convWarn) {
		t.Fatal("Warning should be castable to *ConvergenceWarning")
	}
	if convWarn.Iterations != 10 {
		t.Errorf("Iterations = %d, want 10", convWarn.Iterations)
	}
}

func TestWrapAndIs(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// ラップ
	wrapped := Wrap(baseErr, "in StandardScaler.Fit")

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	if !strings.Contains(wrapped.Error(), "in StandardScaler.Fit") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	// 元のエラー
	baseErr := ErrEmptyData

	// フォーマット付きラップ
	wrapped := Wrapf(baseErr, "in %s: expected %d, got %d", "Predict", 10, 5)

	// Is関数でチェック
	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	// エラーメッセージの確認
	expectedMsg := "in Predict: expected 10, got 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	// チェーン全体を確認
	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
