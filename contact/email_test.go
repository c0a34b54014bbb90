package contact

import (
	"testing"

	"github.com/stretchr/testify/require"

	santatest "github.com/arloliu/santa/testing"
	"github.com/arloliu/santa/types"
)

func TestNewEmail(t *testing.T) {
	email, err := NewEmail("alice@blah.com")

	require.NoError(t, err)
	require.Equal(t, "alice@blah.com", email.Value())
	require.Equal(t, types.ContactEmail, email.Kind())
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "too short", raw: "a@b.c"},
		{name: "no at sign", raw: "Not an email"},
		{name: "empty", raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.raw)

			require.ErrorIs(t, err, types.ErrInvalidFormat)
			require.Nil(t, email)
		})
	}
}

func TestEmail_Deliver(t *testing.T) {
	rec := santatest.NewRecorder()
	email, err := NewEmail("bob@example.com", WithTransport(rec))
	require.NoError(t, err)

	email.Deliver("Hello Bob!")
	email.Deliver("Hello again!")

	require.Equal(t, 2, rec.Count("bob@example.com"))
	require.Equal(t, "Hello again!", rec.Deliveries()[1].Message)
	require.Equal(t, types.ContactEmail, rec.Deliveries()[0].Kind)
}
