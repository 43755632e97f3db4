package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Run(`well-formed address check`, func(t *testing.T) {
		require.True(t, ValidateEmail("john@example.com"))
		require.True(t, ValidateEmail("  john@example.com  "))
		require.True(t, ValidateEmail("john.doe+hr@sub.example.co"))
	})

	t.Run(`malformed address check`, func(t *testing.T) {
		require.False(t, ValidateEmail("john@"))
		require.False(t, ValidateEmail("john.example.com"))
		require.False(t, ValidateEmail("@example.com"))
		require.False(t, ValidateEmail(""))
		require.False(t, ValidateEmail("john@example.c"))
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run(`digit count in range check`, func(t *testing.T) {
		require.True(t, ValidatePhone("1234567890"))
		require.True(t, ValidatePhone("+1 (234) 567-8901"))
		require.True(t, ValidatePhone("123456789012345"))
	})

	t.Run(`digit count out of range check`, func(t *testing.T) {
		require.False(t, ValidatePhone("12345"))
		require.False(t, ValidatePhone("1234567890123456"))
		require.False(t, ValidatePhone(""))
		require.False(t, ValidatePhone("not a phone"))
	})
}
