package constants

const (
	// MinDecimalPrecision and MaxDecimalPrecision bound the total number of
	// significant digits a catalog decimal type may declare.
	MinDecimalPrecision = 1
	MaxDecimalPrecision = 38
	// MinDecimalScale bounds the digits allowed after the decimal point; the
	// upper bound is the declared precision.
	MinDecimalScale = 0

	LogLevelEnvVar = "CATALOG_LOG_LEVEL"
)
