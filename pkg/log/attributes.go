// Package log defines standard attribute keys for time-series transforms.
//
// Using these keys consistently lets log pipelines filter on the transform,
// the shape of the panel being processed and the SAX configuration that
// produced a given batch of words. Keys follow a dotted hierarchy
// ("data.instances", "sax.window_size").

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the transformer type.
	// Examples: "SAX", "RowZNormalizer"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "save_words", "load_words"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is emitting the record.
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// InstancesKey is the number of series (rows) in the input panel.
	InstancesKey = "data.instances"

	// SeriesLengthKey is the number of time points per series.
	SeriesLengthKey = "data.series_length"

	// WindowsKey is the number of sliding windows per instance.
	WindowsKey = "data.windows"

	// DegenerateWindowsKey counts zero-variance windows seen during z-normalization.
	DegenerateWindowsKey = "data.degenerate_windows"

	// NonFiniteValuesKey counts NaN or Inf points in the input series.
	// They propagate into NaN windows and shorter words.
	NonFiniteValuesKey = "data.non_finite_values"

	// DataSizeKey indicates the size of an encoded payload in bytes.
	DataSizeKey = "data.size_bytes"
)

// SAX configuration
const (
	WordLengthKey   = "sax.word_length"
	AlphabetSizeKey = "sax.alphabet_size"
	WindowSizeKey   = "sax.window_size"
	OutputFormatKey = "sax.output_format"
	CodecKey        = "sax.codec"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey is the number of goroutines used for an operation.
	WorkersKey = "perf.workers"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// WarningKey carries a structured warning object.
	WarningKey = "warning"
)

// Standard attribute values.
const (
	OperationFit          = "fit"
	OperationTransform    = "transform"
	OperationFitTransform = "fit_transform"
	OperationSaveWords    = "save_words"
	OperationLoadWords    = "load_words"

	ErrorInvalidConfig = "INVALID_CONFIG"
	ErrorShapeMismatch = "SHAPE_MISMATCH"
	ErrorEmptyData     = "EMPTY_DATA"
)
