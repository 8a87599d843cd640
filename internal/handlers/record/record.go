// Package record contains the five operations on person records:
// Add, View All, View By Role, Edit and Delete.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The menu calls every operation the same way:
//
//	func(in input.Reader) response.Response
//
// That signature has no room for the session. A factory accepts the
// session once and returns a Handler that closes over it:
//
//	handlers := map[string]record.Handler{
//	    "1": record.Add(sess),   // factory runs ONCE at startup
//	}
//	resp := handlers["1"](in)    // handler runs on EVERY menu choice
//
// Handlers never print and never return errors: every bad answer ends in
// one of the response.Outcome values.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/paagano/EducationCentreMIS/internal/input"
	"github.com/paagano/EducationCentreMIS/internal/session"
	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/types"
	"github.com/paagano/EducationCentreMIS/internal/utils/response"
)

// Handler runs one operation to completion.
type Handler func(in input.Reader) response.Response

// Confirmation answers for Delete.
const (
	confirmYes = "1"
	confirmNo  = "2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Add asks for a role, creates a record of that role, fills every field and
// stores it.
//
// The role answer may be its menu number ("1" Teacher, "2" Admin,
// "3" Student) or its name in any case. Anything else ends with
// OutcomeInvalidRole before an id is allocated.
// ─────────────────────────────────────────────────────────────────────────────
func Add(sess *session.Session) Handler {
	return func(in input.Reader) response.Response {
		log := sess.Logger

		answer := input.Ask(in, rolePrompt())
		role, ok := selectRole(answer)
		if !ok {
			log.Debug("add: invalid role", zap.String("answer", answer))
			return response.Error(response.OutcomeInvalidRole, "Invalid role selected.")
		}

		rec, err := sess.Store.Create(role)
		if err != nil {
			log.Error("add: create record", zap.Error(err))
			return response.GeneralError(err)
		}

		rec.Populate(in)

		if err := sess.Store.Append(rec); err != nil {
			log.Error("add: append record", zap.Int("id", rec.ID()), zap.Error(err))

			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				return response.ValidationError(verrs)
			}
			return response.GeneralError(err)
		}

		log.Info("record created",
			zap.Int("id", rec.ID()),
			zap.String("role", role.String()))

		resp := response.OK(response.OutcomeCreated,
			fmt.Sprintf("%s added successfully with ID %d.", role, rec.ID()))
		resp.ID = rec.ID()
		return resp
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ViewAll lists every record in insertion order under the column header.
// It reads no input.
// ─────────────────────────────────────────────────────────────────────────────
func ViewAll(sess *session.Session) Handler {
	return func(_ input.Reader) response.Response {
		records, err := sess.Store.Records()
		if err != nil {
			sess.Logger.Error("view all: list records", zap.Error(err))
			return response.GeneralError(err)
		}

		if len(records) == 0 {
			return response.OK(response.OutcomeNoRecords, "No records found.")
		}

		return listing(records)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ViewByRole asks for a role name and lists the matching records.
// ─────────────────────────────────────────────────────────────────────────────
func ViewByRole(sess *session.Session) Handler {
	return func(in input.Reader) response.Response {
		answer := input.Ask(in, "Enter role to view (Teacher/Admin/Student): ")

		role, ok := types.ParseRole(answer)
		if !ok {
			return response.Error(response.OutcomeInvalidRole,
				fmt.Sprintf("Invalid role %q. Choose Teacher, Admin or Student.", strings.TrimSpace(answer)))
		}

		records, err := sess.Store.FilterByRole(role.String())
		if err != nil {
			sess.Logger.Error("view by role: filter", zap.String("role", role.String()), zap.Error(err))
			return response.GeneralError(err)
		}

		if len(records) == 0 {
			return response.OK(response.OutcomeNoRecordsForRole,
				fmt.Sprintf("No records found for role %s.", role))
		}

		return listing(records)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Edit asks for an id and then walks the record's fields. Blank answers
// keep the current values.
// ─────────────────────────────────────────────────────────────────────────────
func Edit(sess *session.Session) Handler {
	return func(in input.Reader) response.Response {
		log := sess.Logger

		id, resp, ok := lookup(sess, input.Ask(in, "Enter the ID of the record to edit: "))
		if !ok {
			return resp
		}

		rec, err := sess.Store.FindByID(id)
		if err != nil {
			return notFoundOr(sess, id, err)
		}

		rec.EditFields(in)

		if err := sess.Store.Update(rec); err != nil {
			log.Error("edit: update record", zap.Int("id", id), zap.Error(err))
			return response.GeneralError(err)
		}

		log.Info("record updated", zap.Int("id", id))

		resp = response.OK(response.OutcomeUpdated, "Record updated successfully.")
		resp.ID = id
		return resp
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete asks for an id, shows the record and asks for confirmation.
// Only "1" deletes; "2" cancels and anything else is an invalid choice.
// Neither of the latter touches the store.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(sess *session.Session) Handler {
	return func(in input.Reader) response.Response {
		log := sess.Logger

		id, resp, ok := lookup(sess, input.Ask(in, "Enter the ID of the record to delete: "))
		if !ok {
			return resp
		}

		rec, err := sess.Store.FindByID(id)
		if err != nil {
			return notFoundOr(sess, id, err)
		}

		prompt := types.Header() + "\n" + rec.Display() + "\n" +
			"Are you sure you want to delete this record? (1 = Yes, 2 = No): "

		switch strings.TrimSpace(input.Ask(in, prompt)) {
		case confirmYes:
			if err := sess.Store.Remove(rec); err != nil {
				log.Error("delete: remove record", zap.Int("id", id), zap.Error(err))
				return response.GeneralError(err)
			}
			log.Info("record deleted", zap.Int("id", id), zap.String("role", rec.Role().String()))
			resp = response.OK(response.OutcomeDeleted, "Record deleted successfully.")
		case confirmNo:
			resp = response.OK(response.OutcomeCancelled, "Deletion cancelled.")
		default:
			resp = response.Error(response.OutcomeInvalidChoice, "Invalid choice. Record not deleted.")
		}

		resp.ID = id
		return resp
	}
}

func rolePrompt() string {
	var b strings.Builder
	b.WriteString("Select role (")
	for i, r := range types.ListRoles() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d = %s", i+1, r)
	}
	b.WriteString("): ")
	return b.String()
}

// selectRole accepts a role's menu number or its name.
func selectRole(answer string) (types.Role, bool) {
	roles := types.ListRoles()
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil {
		if n >= 1 && n <= len(roles) {
			return roles[n-1], true
		}
		return "", false
	}
	return types.ParseRole(answer)
}

// lookup parses an id answer. ok is false when resp should be returned
// as is.
func lookup(sess *session.Session, answer string) (id int, resp response.Response, ok bool) {
	id, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		sess.Logger.Debug("invalid id", zap.String("answer", answer))
		return 0, response.Error(response.OutcomeInvalidID, "Invalid ID. Please enter a number."), false
	}
	return id, response.Response{}, true
}

func notFoundOr(sess *session.Session, id int, err error) response.Response {
	if errors.Is(err, storage.ErrNotFound) {
		resp := response.Error(response.OutcomeNotFound, fmt.Sprintf("Record with ID %d not found.", id))
		resp.ID = id
		return resp
	}
	sess.Logger.Error("find record", zap.Int("id", id), zap.Error(err))
	return response.GeneralError(err)
}

func listing(records []types.Record) response.Response {
	rows := make([]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Display())
	}
	return response.OK(response.OutcomeListed, fmt.Sprintf("%d record(s).", len(records))).
		WithListing(types.Header(), rows)
}
