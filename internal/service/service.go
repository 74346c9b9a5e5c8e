// Package service contains the business logic.
//
// It sits below the handler layer: it receives validated data from the
// handlers and performs the conversion computation.
package service
