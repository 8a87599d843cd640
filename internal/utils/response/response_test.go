package response

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	r := OK(OutcomeListed, "2 record(s)").WithListing("HEADER", []string{"row1", "row2"})

	require.NoError(t, Write(&buf, r))
	assert.Equal(t, "HEADER\nrow1\nrow2\n2 record(s)\n", buf.String())
}

func TestWrite_NoMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Response{}))
	assert.Empty(t, buf.String())
}

func TestGeneralError(t *testing.T) {
	r := GeneralError(errors.New("disk on fire"))
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, OutcomeFailed, r.Outcome)
	assert.Equal(t, "disk on fire", r.Message)
}

func TestValidationError(t *testing.T) {
	type row struct {
		ID   int    `validate:"gt=0"`
		Name string `validate:"required"`
		Role string `validate:"oneof=Teacher Admin"`
	}

	err := validator.New().Struct(row{Role: "Parent"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	r := ValidationError(verrs)
	assert.Equal(t, OutcomeInvalidRecord, r.Outcome)
	assert.Contains(t, r.Message, "field ID must be greater than 0")
	assert.Contains(t, r.Message, "field Name is required")
	assert.Contains(t, r.Message, "field Role must be one of: Teacher Admin")
}
