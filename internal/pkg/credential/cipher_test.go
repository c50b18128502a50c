//go:build unit

package credential_test

import (
	"strings"
	"testing"

	"slotbook/internal/pkg/credential"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherRoundTrip(t *testing.T) {
	c, err := credential.NewCipher("test-credential-secret")
	require.NoError(t, err)

	payload := []byte(`{"booking_id":"b1","number":"BK-260905-0001","participants":2}`)

	token, err := c.Seal(payload)
	require.NoError(t, err)
	require.Contains(t, token, ":")

	opened, err := c.Open(token)
	require.NoError(t, err)
	if diff := cmp.Diff(string(payload), string(opened)); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCipherNonceFreshness(t *testing.T) {
	c, err := credential.NewCipher("test-credential-secret")
	require.NoError(t, err)

	a, err := c.Seal([]byte("same payload"))
	require.NoError(t, err)
	b, err := c.Seal([]byte("same payload"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCipherOpenFailures(t *testing.T) {
	c, err := credential.NewCipher("test-credential-secret")
	require.NoError(t, err)

	token, err := c.Seal([]byte("payload"))
	require.NoError(t, err)

	t.Run("tampered ciphertext", func(t *testing.T) {
		parts := strings.SplitN(token, ":", 2)
		flipped := parts[0] + ":" + flipHexDigit(parts[1])
		_, err := c.Open(flipped)
		assert.ErrorIs(t, err, credential.ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := credential.NewCipher("a-different-secret")
		require.NoError(t, err)
		_, err = other.Open(token)
		assert.ErrorIs(t, err, credential.ErrInvalidToken)
	})

	t.Run("structural garbage", func(t *testing.T) {
		for _, bad := range []string{"", "no-separator", "zz:zz", "abcd:1234", token + "ff"} {
			_, err := c.Open(bad)
			assert.ErrorIs(t, err, credential.ErrInvalidToken, "token %q", bad)
		}
	})
}

func TestCipherRequiresSecret(t *testing.T) {
	_, err := credential.NewCipher("")
	assert.Error(t, err)
}

func flipHexDigit(s string) string {
	b := []byte(s)
	if b[0] == '0' {
		b[0] = '1'
	} else {
		b[0] = '0'
	}
	return string(b)
}
