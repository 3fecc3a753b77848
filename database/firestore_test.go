package database

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFirestore_RequiresProject(t *testing.T) {
	_, err := OpenFirestore(context.Background(), "", "")
	assert.EqualError(t, err, "FIRESTORE_PROJECT_ID is required")
}

// Runs against the Firestore emulator only. Each subtest gets its own project
// id so collections do not leak between cases.
func TestFirestoreStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	runStoreContract(t, false, func(t *testing.T) Store {
		s, err := OpenFirestore(context.Background(), "perfume-"+uuid.NewString()[:8], "")
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close(context.Background()) })
		return s
	})
}
