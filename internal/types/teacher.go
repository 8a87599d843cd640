package types

import (
	"fmt"
	"strings"

	"github.com/paagano/EducationCentreMIS/internal/input"
)

// Teacher is a Person with a salary and two subjects.
type Teacher struct {
	Person
	salary   float64
	subject1 string
	subject2 string
}

// NewTeacher returns an empty Teacher with the given id.
func NewTeacher(id int) *Teacher {
	return &Teacher{Person: newPerson(id, RoleTeacher)}
}

// Salary returns the salary, never negative.
func (t *Teacher) Salary() float64 { return t.salary }

// SetSalary stores salary, clamping negative values to 0.
func (t *Teacher) SetSalary(salary float64) { t.salary = max(salary, 0) }

// Subject1 returns the first subject.
func (t *Teacher) Subject1() string { return t.subject1 }

// SetSubject1 stores the trimmed first subject.
func (t *Teacher) SetSubject1(s string) { t.subject1 = strings.TrimSpace(s) }

// Subject2 returns the second subject.
func (t *Teacher) Subject2() string { return t.subject2 }

// SetSubject2 stores the trimmed second subject.
func (t *Teacher) SetSubject2(s string) { t.subject2 = strings.TrimSpace(s) }

// Display implements Record.
func (t *Teacher) Display() string {
	return displayCommon(&t.Person) +
		fmt.Sprintf("Salary: %.2f, Subjects: %s, %s", t.salary, t.subject1, t.subject2)
}

// Populate implements Record.
func (t *Teacher) Populate(in input.Reader) {
	populateCommon(&t.Person, in)
	askFloat(in, "Enter salary: ", t.SetSalary)
	t.SetSubject1(input.Ask(in, "Enter subject 1: "))
	t.SetSubject2(input.Ask(in, "Enter subject 2: "))
}

// EditFields implements Record.
func (t *Teacher) EditFields(in input.Reader) {
	editCommon(&t.Person, in)
	editFloat(in, "Salary", t.salary, t.SetSalary)
	editText(in, "Subject 1", t.subject1, t.SetSubject1)
	editText(in, "Subject 2", t.subject2, t.SetSubject2)
}

// View implements Record.
func (t *Teacher) View() RecordView {
	v := viewCommon(&t.Person)
	v.Salary = t.salary
	v.Subject1 = t.subject1
	v.Subject2 = t.subject2
	return v
}
