package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name    string   `json:"name" validate:"required,max=5"`
	Brand   *string  `json:"brand,omitempty" validate:"omitempty,min=1"`
	Flavors []string `json:"flavors" validate:"dive,required,trimmed"`
	Limit   int      `query:"limit" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, v.Validate(&sampleRequest{Name: "Roast", Flavors: []string{"vanilla"}}))
	})

	t.Run("field errors use tag names", func(t *testing.T) {
		empty := ""
		err := v.Validate(&sampleRequest{
			Name:    "too long name",
			Brand:   &empty,
			Flavors: []string{"vanilla", ""},
			Limit:   -1,
		})
		require.Error(t, err)

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{
			"name":       "must not exceed 5 characters",
			"brand":      "must be at least 1 characters",
			"flavors[1]": "is required",
			"limit":      "must be greater than or equal to 0",
		}, verr.Fields)
		assert.Contains(t, err.Error(), "name must not exceed 5 characters")
	})

	t.Run("padded values are rejected", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Name: "Roast", Flavors: []string{"vanilla", " mint", "cocoa\t", "  "}})

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, map[string]string{
			"flavors[1]": "must not have leading or trailing whitespace",
			"flavors[2]": "must not have leading or trailing whitespace",
			"flavors[3]": "must not have leading or trailing whitespace",
		}, verr.Fields)
	})

	t.Run("missing required", func(t *testing.T) {
		err := v.Validate(&sampleRequest{})

		var verr *Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "is required", verr.Fields["name"])
	})
}
