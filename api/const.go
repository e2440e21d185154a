package api

import "errors"

// ErrorEmptyValues input did not contain any value to index.
var ErrorEmptyValues = errors.New("emptyValues")

// ErrorInvalidValue input contain a value that cannot be parsed.
var ErrorInvalidValue = errors.New("invalidValue")

// ErrorMixedValues input contain values that are not of the same type,
// hence cannot be ordered against each other.
var ErrorMixedValues = errors.New("mixedValues")
