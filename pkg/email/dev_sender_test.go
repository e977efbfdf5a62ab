package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/email"
)

func TestDevSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("writes submission to disk", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		sender := email.NewDevSender(dir)
		require.NoError(t, sender.Send(context.Background(), testPayload()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Name(), "ref-123")

		data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
		require.NoError(t, err)

		var saved struct {
			ReferenceID string        `json:"reference_id"`
			Payload     email.Payload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.Equal(t, "ref-123", saved.ReferenceID)
		assert.Equal(t, "Jane", saved.Payload.FirstName)
		assert.Equal(t, "jane@example.com", saved.Payload.ReplyTo)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "email-output")

		sender := email.NewDevSender(dir)
		require.NoError(t, sender.Send(context.Background(), testPayload()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
