package goanalytics

import "errors"

// ErrInvalidArgument reports a parameter outside its documented domain,
// such as a percentile rank outside [0, 100] or a non-positive window.
var ErrInvalidArgument = errors.New("goanalytics: invalid argument")

// ErrLengthMismatch reports paired sequences of unequal length passed to a
// bivariate function such as Correlation or LinearRegression.
var ErrLengthMismatch = errors.New("goanalytics: length mismatch")
