package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wmstack/wmsctl/internal/api"
)

func testUser() *api.User {
	return &api.User{
		ID:       "u-1",
		Username: "amara",
		Email:    "amara@example.com",
		Role:     "warehouse_manager",
		IsActive: true,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save("tok-123", testUser()))

	token, user := store.Load()
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	assert.Equal(t, "amara", user.Username)
	assert.Equal(t, "warehouse_manager", user.Role)
}

func TestStoreLoadEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	token, user := store.Load()
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStoreTokenWithoutUser(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save("tok-123", nil))

	token, user := store.Load()
	assert.Equal(t, "tok-123", token)
	assert.Nil(t, user)
}

func TestStoreUserWithoutTokenIgnored(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("tok-123", testUser()))
	require.NoError(t, os.Remove(filepath.Join(dir, tokenFileName)))

	token, user := store.Load()
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStoreMalformedUserSnapshot(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("tok-123", testUser()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, userFileName), []byte("{not json"), 0600))

	token, user := store.Load()
	assert.Equal(t, "tok-123", token, "token survives a corrupt snapshot")
	assert.Nil(t, user)
}

func TestStoreChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("tok-123", testUser()))

	tampered := `{"checksum":"deadbeef","user":{"username":"mallory","role":"admin"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, userFileName), []byte(tampered), 0600))

	token, user := store.Load()
	assert.Equal(t, "tok-123", token)
	assert.Nil(t, user, "tampered snapshot reads as absent")
}

func TestStoreClearIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save("tok-123", testUser()))
	store.Clear()
	store.Clear()

	token, user := store.Load()
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStoreSavedFilePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Save("tok-123", testUser()))

	info, err := os.Stat(filepath.Join(dir, tokenFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStoreSealedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir).WithPassphrase("correct horse")

	require.NoError(t, store.Save("tok-123", testUser()))

	raw, err := os.ReadFile(filepath.Join(dir, tokenFileName))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok-123", "token is not stored in the clear")

	token, user := store.Load()
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	assert.Equal(t, "amara", user.Username)
}

func TestStoreSealedWrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStore(dir).WithPassphrase("right").Save("tok-123", testUser()))

	token, user := NewStore(dir).WithPassphrase("wrong").Load()
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStoreSealedReadWithoutPassphrase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewStore(dir).WithPassphrase("secret").Save("tok-123", testUser()))

	token, user := NewStore(dir).Load()
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestStoreTokenSource(t *testing.T) {
	store := NewStore(t.TempDir())
	assert.Empty(t, store.Token())

	require.NoError(t, store.Save("tok-123", nil))
	assert.Equal(t, "tok-123", store.Token())

	store.Clear()
	assert.Empty(t, store.Token())
}
