package auth

import (
	"testing"

	"jobhud/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password
	assert.True(t, hasher.Check(password, hash))

	// Incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Invalid hash never panics, just fails the check
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Same plaintext, different salts, different hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_EmptyPasswordIsHashable(t *testing.T) {
	// No password policy at this layer: empty string is hashed like any other.
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.True(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("anything", hash))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	cfg := &config.Config{}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
