// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(pepper string) PasswordHasher {
	return NewPasswordHasherWithCost(pepper, bcrypt.MinCost)
}

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := newTestHasher("pepper")

	hash, err := h.Hash("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt digest, got %q", hash)

	assert.NoError(t, h.Compare(hash, "pw1"))
}

func TestPasswordHasher_WrongPassword(t *testing.T) {
	h := newTestHasher("pepper")

	hash, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.ErrorIs(t, h.Compare(hash, "pw2"), ErrPasswordMismatch)
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	h := newTestHasher("pepper")

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Compare(first, "same"))
	assert.NoError(t, h.Compare(second, "same"))
}

func TestPasswordHasher_PepperIsRequiredToVerify(t *testing.T) {
	hash, err := newTestHasher("pepper-a").Hash("pw1")
	require.NoError(t, err)

	assert.ErrorIs(t, newTestHasher("pepper-b").Compare(hash, "pw1"), ErrPasswordMismatch)
}

func TestPasswordHasher_LongPassword(t *testing.T) {
	h := newTestHasher("pepper")
	long := strings.Repeat("x", 200)

	hash, err := h.Hash(long)
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, long))
	assert.ErrorIs(t, h.Compare(hash, long[:199]), ErrPasswordMismatch)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	err := newTestHasher("pepper").Compare("not-a-bcrypt-hash", "pw1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestNewPasswordHasherWithCost_OutOfRangeFallsBack(t *testing.T) {
	h := NewPasswordHasherWithCost("pepper", 100).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPasswordHasherWithCost("pepper", 0).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
