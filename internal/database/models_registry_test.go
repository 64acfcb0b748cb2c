package database

import (
	"testing"

	modelspkg "skillswap/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesFriendshipAndMessage(t *testing.T) {
	var hasFriendship, hasMessage bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *modelspkg.Friendship:
			hasFriendship = true
		case *modelspkg.Message:
			hasMessage = true
		}
	}
	require.True(t, hasFriendship, "PersistentModels should include Friendship")
	require.True(t, hasMessage, "PersistentModels should include Message")
}
