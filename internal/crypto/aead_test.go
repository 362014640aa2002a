package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXChaChaAEAD_RoundTrip(t *testing.T) {
	aead := NewXChaChaAEAD()
	key, err := RandomBytes32()
	require.NoError(t, err)

	ct, err := aead.Seal(key, []byte("wallet seed material"), []byte("aad"))
	require.NoError(t, err)

	pt, err := aead.Open(key, ct, []byte("aad"))
	require.NoError(t, err)
	assert.Equal(t, []byte("wallet seed material"), pt)
}

func TestXChaChaAEAD_WrongKey(t *testing.T) {
	aead := NewXChaChaAEAD()
	key, err := RandomBytes32()
	require.NoError(t, err)
	wrong, err := RandomBytes32()
	require.NoError(t, err)

	ct, err := aead.Seal(key, []byte("secret"), nil)
	require.NoError(t, err)

	_, err = aead.Open(wrong, ct, nil)
	assert.Error(t, err)
}

func TestXChaChaAEAD_WrongAAD(t *testing.T) {
	aead := NewXChaChaAEAD()
	key, err := RandomBytes32()
	require.NoError(t, err)

	ct, err := aead.Seal(key, []byte("secret"), []byte("pubkey-a"))
	require.NoError(t, err)

	_, err = aead.Open(key, ct, []byte("pubkey-b"))
	assert.Error(t, err)
}

func TestXChaChaAEAD_Tampered(t *testing.T) {
	aead := NewXChaChaAEAD()
	key, err := RandomBytes32()
	require.NoError(t, err)

	ct, err := aead.Seal(key, []byte("secret"), nil)
	require.NoError(t, err)
	ct[len(ct)-1] ^= 0x01

	_, err = aead.Open(key, ct, nil)
	assert.Error(t, err)
}

func TestXChaChaAEAD_TooShort(t *testing.T) {
	aead := NewXChaChaAEAD()
	key, err := RandomBytes32()
	require.NoError(t, err)

	_, err = aead.Open(key, []byte("short"), nil)
	assert.Error(t, err)
}

func TestXChaChaAEAD_NonceFreshness(t *testing.T) {
	aead := NewXChaChaAEAD()
	key, err := RandomBytes32()
	require.NoError(t, err)

	a, err := aead.Seal(key, []byte("same plaintext"), nil)
	require.NoError(t, err)
	b, err := aead.Seal(key, []byte("same plaintext"), nil)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
