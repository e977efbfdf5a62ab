package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func TestValidPhone(t *testing.T) {
	t.Parallel()

	valid := []string{
		"+212 600 000 000",
		"212 600 000 000",
		"(555) 123-4567",
		"555.123.4567",
		"555-123-4567",
		"5551234567",
		"+212600000000",
		"123456789012",
	}
	for _, number := range valid {
		t.Run("accepts "+number, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, validator.Apply(validator.ValidPhone("phone", number)))
		})
	}

	invalid := []string{
		"",
		"123",
		"12 34 56",
		"phone number",
		"555-1234",
		"+212 600 000 000 000 000",
		"(55) 123-4567",
	}
	for _, number := range invalid {
		t.Run("rejects "+number, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidPhone("phone", number))
			require.Error(t, err)
			assert.True(t, validator.IsKind(err, validator.KindPhoneInvalid))

			var fe validator.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "phone", fe.Field)
			assert.Equal(t, validator.MsgPhoneInvalid, fe.Message)
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"jane@example.com",
		"jane.doe+tag@sub.example.co",
		"j@d.io",
	}
	for _, address := range valid {
		t.Run("accepts "+address, func(t *testing.T) {
			t.Parallel()
			assert.NoError(t, validator.Apply(validator.ValidEmail("email", address)))
		})
	}

	invalid := []string{
		"",
		"not-an-email",
		"jane@example",
		"jane doe@example.com",
		"jane@@example.com",
		"@example.com",
		"jane@",
	}
	for _, address := range invalid {
		t.Run("rejects "+address, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidEmail("email", address))
			require.Error(t, err)
			assert.True(t, validator.IsKind(err, validator.KindEmailInvalid))
		})
	}
}

func TestRequiredAndChecked(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.Required("firstname", "Jane")))

	err := validator.Apply(validator.Required("firstname", "   "))
	require.Error(t, err)
	assert.True(t, validator.IsKind(err, validator.KindFieldRequired))

	assert.NoError(t, validator.Apply(validator.Checked("consent", true)))

	err = validator.Apply(validator.Checked("consent", false))
	require.Error(t, err)
	assert.True(t, validator.IsKind(err, validator.KindConsentRequired))
}

func TestApplyReturnsFirstFailure(t *testing.T) {
	t.Parallel()

	// Phone is checked before email; only the phone error surfaces even
	// though both values are invalid.
	err := validator.Apply(
		validator.ValidPhone("phone", "123"),
		validator.ValidEmail("email", "not-an-email"),
	)
	require.Error(t, err)
	assert.True(t, validator.IsKind(err, validator.KindPhoneInvalid))
	assert.False(t, validator.IsKind(err, validator.KindEmailInvalid))

	// With a valid phone the email error surfaces next.
	err = validator.Apply(
		validator.ValidPhone("phone", "+212 600 000 000"),
		validator.ValidEmail("email", "not-an-email"),
	)
	require.Error(t, err)
	assert.True(t, validator.IsKind(err, validator.KindEmailInvalid))

	// All passing rules yield nil.
	assert.NoError(t, validator.Apply(
		validator.ValidPhone("phone", "+212 600 000 000"),
		validator.ValidEmail("email", "jane@example.com"),
	))
}
