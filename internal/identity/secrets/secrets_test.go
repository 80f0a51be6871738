package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "gatekeep/pkg/domain-errors"
)

func TestHashAndVerify(t *testing.T) {
	t.Run("round trip verifies", func(t *testing.T) {
		hash, err := Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NoError(t, Verify("correct horse battery staple", hash))
	})

	t.Run("wrong password fails with unauthorized", func(t *testing.T) {
		hash, err := Hash("password-one")
		require.NoError(t, err)

		err = Verify("password-two", hash)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("empty password rejected before hashing", func(t *testing.T) {
		_, err := Hash("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
