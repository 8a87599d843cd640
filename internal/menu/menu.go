// Package menu is the text front end: it prints the main menu, reads a
// choice and runs the matching record operation until the user exits or
// input ends.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/paagano/EducationCentreMIS/internal/handlers/record"
	"github.com/paagano/EducationCentreMIS/internal/input"
	"github.com/paagano/EducationCentreMIS/internal/session"
	"github.com/paagano/EducationCentreMIS/internal/utils/response"
)

const exitChoice = "6"

type entry struct {
	key     string
	label   string
	handler record.Handler
}

// Menu binds the operations of one session to their menu keys.
type Menu struct {
	sess    *session.Session
	entries []entry
	out     io.Writer
}

// New builds the menu for sess. Output (menu text and operation results)
// goes to out.
func New(sess *session.Session, out io.Writer) *Menu {
	return &Menu{
		sess: sess,
		out:  out,
		entries: []entry{
			{"1", "Add Record", record.Add(sess)},
			{"2", "View All Records", record.ViewAll(sess)},
			{"3", "View Records By Role", record.ViewByRole(sess)},
			{"4", "Edit Record", record.Edit(sess)},
			{"5", "Delete Record", record.Delete(sess)},
		},
	}
}

// Run loops until the exit choice or end of input. Only failures to read
// input or write output are returned.
func (m *Menu) Run(in input.Reader) error {
	for {
		m.render()

		choice, err := in.ReadLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			m.sess.Logger.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu.Run: read choice: %w", err)
		}

		choice = strings.TrimSpace(choice)
		if choice == exitChoice {
			_, err := fmt.Fprintln(m.out, "Goodbye!")
			return err
		}

		resp := m.dispatch(choice, in)
		if err := response.Write(m.out, resp); err != nil {
			return fmt.Errorf("menu.Run: write response: %w", err)
		}
	}
}

func (m *Menu) dispatch(choice string, in input.Reader) response.Response {
	for _, e := range m.entries {
		if e.key == choice {
			m.sess.Logger.Debug("menu choice", zap.String("choice", e.label))
			return e.handler(in)
		}
	}
	return response.Error(response.OutcomeInvalidChoice, "Invalid choice. Please try again.")
}

func (m *Menu) render() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "===== Education Centre Records =====")
	for _, e := range m.entries {
		fmt.Fprintf(m.out, "%s. %s\n", e.key, e.label)
	}
	fmt.Fprintf(m.out, "%s. Exit\n", exitChoice)
}
