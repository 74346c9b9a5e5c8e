// Package handler is the HTTP layer. It binds and validates request
// payloads, calls into the service layer, and maps domain failures onto
// the errs response types. Transport concerns stop here; services only
// see plain Go values and context.Context.
package handler
