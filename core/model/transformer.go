// Package model defines the small set of interfaces shared by the
// transformers in this module.
package model

import "gonum.org/v1/gonum/mat"

// Fitter は変換に必要な情報を入力から確認するインターフェース
type Fitter interface {
	// Fit は入力を検証する。状態を持たない変換器では何も学習しない
	Fit(X mat.Matrix) error
}

// Transformer はデータ変換のインターフェース
type Transformer interface {
	Fitter

	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for transformers that expose their
// hyperparameters.
type ParameterGetter interface {
	// GetParams returns the transformer's hyperparameters keyed by name.
	GetParams() map[string]interface{}
}
