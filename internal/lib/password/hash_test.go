package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tuistmessiah/active-sloth-api/internal/lib/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("correcthorsebattery", bcryptTestCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correcthorsebattery", hash)

	assert.NoError(t, password.Compare(hash, "correcthorsebattery"))
	assert.Error(t, password.Compare(hash, "wrongpassword"))
}

func TestHashUsesDefaultCost(t *testing.T) {
	hash, err := password.Hash("somepassword", 0)
	require.NoError(t, err)
	assert.NoError(t, password.Compare(hash, "somepassword"))
}

func TestHashProducesDifferentSalts(t *testing.T) {
	first, err := password.Hash("samepassword", bcryptTestCost)
	require.NoError(t, err)
	second, err := password.Hash("samepassword", bcryptTestCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// Минимальная стоимость bcrypt, чтобы тесты не тормозили.
const bcryptTestCost = 4
