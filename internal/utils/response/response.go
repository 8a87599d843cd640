// Package response provides the outcome every operation returns.
//
// Handlers never print. They return a Response describing what happened
// (a machine-checkable Outcome code plus a human-readable Message and any
// rendered listing), and the menu writes it out with Write. Tests assert on
// the Outcome rather than on wording.
package response

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the result of one operation.
type Response struct {
	Status  string  // "ok" or "error"
	Outcome Outcome // what happened, e.g. OutcomeCreated
	Message string  // human-readable detail
	ID      int     // record id the operation was about, 0 if none
	Listing []string
}

// Status string constants.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Outcome names the distinct results the operations can produce.
type Outcome string

const (
	OutcomeCreated          Outcome = "created"
	OutcomeListed           Outcome = "listed"
	OutcomeUpdated          Outcome = "updated"
	OutcomeDeleted          Outcome = "deleted"
	OutcomeNoRecords        Outcome = "no_records"
	OutcomeNoRecordsForRole Outcome = "no_records_for_role"
	OutcomeInvalidRole      Outcome = "invalid_role"
	OutcomeInvalidID        Outcome = "invalid_id"
	OutcomeNotFound         Outcome = "not_found"
	OutcomeCancelled        Outcome = "cancelled"
	OutcomeInvalidChoice    Outcome = "invalid_choice"
	OutcomeInvalidRecord    Outcome = "invalid_record"
	OutcomeFailed           Outcome = "failed"
)

// OK builds a successful response.
func OK(outcome Outcome, message string) Response {
	return Response{Status: StatusOK, Outcome: outcome, Message: message}
}

// Error builds a response for input the operation could not act on.
func Error(outcome Outcome, message string) Response {
	return Response{Status: StatusError, Outcome: outcome, Message: message}
}

// GeneralError wraps an unexpected error (a storage failure) into a
// Response.
func GeneralError(err error) Response {
	return Error(OutcomeFailed, err.Error())
}

// ValidationError turns the validator.FieldError values for a rejected
// record into a single Response.
//
// Example message:
//
//	record rejected: field ID must be greater than 0, field Name is required
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gt":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		case "gte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must not be less than %s", e.Field(), e.Param()))
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Error(OutcomeInvalidRecord, "record rejected: "+strings.Join(errMessages, ", "))
}

// WithListing returns r with the given rows attached below header.
func (r Response) WithListing(header string, rows []string) Response {
	r.Listing = append([]string{header}, rows...)
	return r
}

// Write renders r: the listing first (if any), then the message.
func Write(w io.Writer, r Response) error {
	for _, line := range r.Listing {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if r.Message == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, r.Message)
	return err
}
