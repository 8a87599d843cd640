package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paagano/EducationCentreMIS/internal/input"
)

// UnknownName replaces a blank name.
const UnknownName = "Unknown"

// Column widths shared by Header and every Display row.
const rowFormat = "%-5v%-20s%-15s%-25s%-10s"

// Person holds the identity fields common to every record category.
// It is embedded by value in Teacher, Admin and Student; id and role are
// written only by the variant constructors.
type Person struct {
	id        int
	role      Role
	name      string
	telephone string
	email     string
}

func newPerson(id int, role Role) Person {
	return Person{id: id, role: role, name: UnknownName}
}

func (p *Person) person() *Person { return p }

// ID returns the record id.
func (p *Person) ID() int { return p.id }

// Role returns the record category.
func (p *Person) Role() Role { return p.role }

// Name returns the person's name, never blank.
func (p *Person) Name() string { return p.name }

// SetName stores the trimmed name, or UnknownName if nothing is left.
func (p *Person) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnknownName
	}
	p.name = name
}

// Telephone returns the telephone number, possibly empty.
func (p *Person) Telephone() string { return p.telephone }

// SetTelephone stores the trimmed telephone number.
func (p *Person) SetTelephone(telephone string) { p.telephone = strings.TrimSpace(telephone) }

// Email returns the email address, possibly empty.
func (p *Person) Email() string { return p.email }

// SetEmail stores the trimmed email address.
func (p *Person) SetEmail(email string) { p.email = strings.TrimSpace(email) }

// Header returns the column header printed above a listing of records.
func Header() string {
	return fmt.Sprintf(rowFormat, "ID", "Name", "Telephone", "Email", "Role") + "Details"
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared helpers. Each variant calls these first and then handles its own
// fields, so the common columns and prompts are identical for all roles.
// ─────────────────────────────────────────────────────────────────────────────

func displayCommon(p *Person) string {
	return fmt.Sprintf(rowFormat, p.id, p.name, p.telephone, p.email, p.role)
}

func populateCommon(p *Person, in input.Reader) {
	p.SetName(input.Ask(in, "Enter name: "))
	p.SetTelephone(input.Ask(in, "Enter telephone: "))
	p.SetEmail(input.Ask(in, "Enter email: "))
}

func editCommon(p *Person, in input.Reader) {
	editText(in, "Name", p.name, p.SetName)
	editText(in, "Telephone", p.telephone, p.SetTelephone)
	editText(in, "Email", p.email, p.SetEmail)
}

// editText asks for a new value and calls set only for a non-blank answer.
func editText(in input.Reader, label, current string, set func(string)) {
	answer := input.Ask(in, fmt.Sprintf("%s [%s] (blank keeps current): ", label, current))
	if strings.TrimSpace(answer) == "" {
		return
	}
	set(answer)
}

// editFloat is editText for decimal fields. Unparseable answers are ignored.
func editFloat(in input.Reader, label string, current float64, set func(float64)) {
	answer := input.Ask(in, fmt.Sprintf("%s [%.2f] (blank keeps current): ", label, current))
	if v, ok := parseFloat(answer); ok {
		set(v)
	}
}

// editInt is editText for integer fields. Unparseable answers are ignored.
func editInt(in input.Reader, label string, current int, set func(int)) {
	answer := input.Ask(in, fmt.Sprintf("%s [%d] (blank keeps current): ", label, current))
	if v, ok := parseInt(answer); ok {
		set(v)
	}
}

func askFloat(in input.Reader, prompt string, set func(float64)) {
	if v, ok := parseFloat(input.Ask(in, prompt)); ok {
		set(v)
	}
}

func askInt(in input.Reader, prompt string, set func(int)) {
	if v, ok := parseInt(input.Ask(in, prompt)); ok {
		set(v)
	}
}

// parseFloat accepts finite decimals only; "NaN" and "Inf" parse in
// strconv but are not salaries.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}
