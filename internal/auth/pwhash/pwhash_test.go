package pwhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(16, 10000)
	require.NoError(t, err)

	hash, err := ph.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, ph.Validate("s3cret", hash))
	assert.Error(t, ph.Validate("wrong", hash))
}

func TestHashesDiffer(t *testing.T) {
	ph, err := New(16, 10000)
	require.NoError(t, err)

	h1, err := ph.HashPassword("s3cret")
	require.NoError(t, err)
	h2, err := ph.HashPassword("s3cret")
	require.NoError(t, err)

	// random salt per hash
	assert.NotEqual(t, h1, h2)
}

func TestBadParams(t *testing.T) {
	_, err := New(4, 10000)
	assert.Error(t, err)

	_, err = New(16, 10)
	assert.Error(t, err)
}

func TestMalformedHash(t *testing.T) {
	ph, err := New(16, 10000)
	require.NoError(t, err)

	assert.Error(t, ph.Validate("s3cret", "not-a-hash"))
}
