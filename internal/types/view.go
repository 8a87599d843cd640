package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RecordView is a flat snapshot of any record: the common fields plus the
// union of every category's fields. Fields that do not belong to the
// record's role stay at their zero value.
//
// validate:"..." tags hold the invariants checked by go-playground/validator
// before a record is accepted by a store. The SQLite backend also uses the
// view as its row shape.
type RecordView struct {
	ID        int    `validate:"gt=0"`
	Role      Role   `validate:"oneof=Teacher Admin Student"`
	Name      string `validate:"required"`
	Telephone string
	Email     string

	Salary         float64 `validate:"gte=0"`
	Subject1       string
	Subject2       string
	Subject3       string
	EmploymentType string
	WorkingHours   int `validate:"gte=0"`
}

// validate is safe for concurrent use and caches struct metadata, so one
// instance is shared by the whole package.
var validate = validator.New()

// Validate checks the invariants every stored record must hold. The
// returned error is a validator.ValidationErrors when a rule fails.
func Validate(r Record) error {
	if r == nil {
		return fmt.Errorf("Validate: nil record")
	}
	return validate.Struct(r.View())
}

func viewCommon(p *Person) RecordView {
	return RecordView{
		ID:        p.id,
		Role:      p.role,
		Name:      p.name,
		Telephone: p.telephone,
		Email:     p.email,
	}
}

// Restore rebuilds the concrete record described by v. Storage backends
// that keep records as rows use it to hand back live Records.
func Restore(v RecordView) (Record, error) {
	r, err := New(v.Role, v.ID)
	if err != nil {
		return nil, fmt.Errorf("Restore: id %d: %w", v.ID, err)
	}

	r.SetName(v.Name)
	r.SetTelephone(v.Telephone)
	r.SetEmail(v.Email)

	switch rec := r.(type) {
	case *Teacher:
		rec.SetSalary(v.Salary)
		rec.SetSubject1(v.Subject1)
		rec.SetSubject2(v.Subject2)
	case *Admin:
		rec.SetSalary(v.Salary)
		rec.SetEmploymentType(v.EmploymentType)
		rec.SetWorkingHours(v.WorkingHours)
	case *Student:
		rec.SetSubject1(v.Subject1)
		rec.SetSubject2(v.Subject2)
		rec.SetSubject3(v.Subject3)
	}

	return r, nil
}
