// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules defined in struct tags,
// extracts validation failures into a field-level format clients can use,
// and classifies transport bind errors into the application's error types.
package validation
