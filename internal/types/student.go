package types

import (
	"fmt"
	"strings"

	"github.com/paagano/EducationCentreMIS/internal/input"
)

// Student is a Person enrolled in three subjects.
type Student struct {
	Person
	subject1 string
	subject2 string
	subject3 string
}

// NewStudent returns an empty Student with the given id.
func NewStudent(id int) *Student {
	return &Student{Person: newPerson(id, RoleStudent)}
}

func (s *Student) Subject1() string { return s.subject1 }

func (s *Student) SetSubject1(v string) { s.subject1 = strings.TrimSpace(v) }

func (s *Student) Subject2() string { return s.subject2 }

func (s *Student) SetSubject2(v string) { s.subject2 = strings.TrimSpace(v) }

func (s *Student) Subject3() string { return s.subject3 }

func (s *Student) SetSubject3(v string) { s.subject3 = strings.TrimSpace(v) }

// Display implements Record.
func (s *Student) Display() string {
	return displayCommon(&s.Person) +
		fmt.Sprintf("Subjects: %s, %s, %s", s.subject1, s.subject2, s.subject3)
}

// Populate implements Record.
func (s *Student) Populate(in input.Reader) {
	populateCommon(&s.Person, in)
	s.SetSubject1(input.Ask(in, "Enter subject 1: "))
	s.SetSubject2(input.Ask(in, "Enter subject 2: "))
	s.SetSubject3(input.Ask(in, "Enter subject 3: "))
}

// EditFields implements Record.
func (s *Student) EditFields(in input.Reader) {
	editCommon(&s.Person, in)
	editText(in, "Subject 1", s.subject1, s.SetSubject1)
	editText(in, "Subject 2", s.subject2, s.SetSubject2)
	editText(in, "Subject 3", s.subject3, s.SetSubject3)
}

// View implements Record.
func (s *Student) View() RecordView {
	v := viewCommon(&s.Person)
	v.Subject1 = s.subject1
	v.Subject2 = s.subject2
	v.Subject3 = s.subject3
	return v
}
