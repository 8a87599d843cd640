package types

import (
	"fmt"
	"strings"

	"github.com/paagano/EducationCentreMIS/internal/input"
)

// Admin is a Person with a salary, an employment type and weekly hours.
//
// Salary and working hours are clamped at 0 like Teacher's salary, so no
// category can hold a negative amount.
type Admin struct {
	Person
	salary         float64
	employmentType string
	workingHours   int
}

// NewAdmin returns an empty Admin with the given id.
func NewAdmin(id int) *Admin {
	return &Admin{Person: newPerson(id, RoleAdmin)}
}

func (a *Admin) Salary() float64 { return a.salary }

func (a *Admin) SetSalary(salary float64) { a.salary = max(salary, 0) }

// EmploymentType is free text such as "Full-time" or "Contract".
func (a *Admin) EmploymentType() string { return a.employmentType }

func (a *Admin) SetEmploymentType(s string) { a.employmentType = strings.TrimSpace(s) }

func (a *Admin) WorkingHours() int { return a.workingHours }

func (a *Admin) SetWorkingHours(hours int) { a.workingHours = max(hours, 0) }

// Display implements Record.
func (a *Admin) Display() string {
	return displayCommon(&a.Person) +
		fmt.Sprintf("Salary: %.2f, Employment: %s, Hours: %d", a.salary, a.employmentType, a.workingHours)
}

// Populate implements Record.
func (a *Admin) Populate(in input.Reader) {
	populateCommon(&a.Person, in)
	askFloat(in, "Enter salary: ", a.SetSalary)
	a.SetEmploymentType(input.Ask(in, "Enter employment type: "))
	askInt(in, "Enter working hours: ", a.SetWorkingHours)
}

// EditFields implements Record.
func (a *Admin) EditFields(in input.Reader) {
	editCommon(&a.Person, in)
	editFloat(in, "Salary", a.salary, a.SetSalary)
	editText(in, "Employment type", a.employmentType, a.SetEmploymentType)
	editInt(in, "Working hours", a.workingHours, a.SetWorkingHours)
}

// View implements Record.
func (a *Admin) View() RecordView {
	v := viewCommon(&a.Person)
	v.Salary = a.salary
	v.EmploymentType = a.employmentType
	v.WorkingHours = a.workingHours
	return v
}
