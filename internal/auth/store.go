// Package auth holds the client-side session core: the durable token store,
// the session state machine, and the startup session loader.
package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"

	"github.com/wmstack/wmsctl/internal/api"
)

const (
	tokenFileName = "token"
	userFileName  = "user.json"

	pbkdf2Iterations = 100000
	sealedKeyLen     = 32
)

// userRecord is the on-disk shape of the persisted user snapshot. The
// checksum lets a truncated or hand-edited snapshot be detected and treated
// as absent instead of being trusted.
type userRecord struct {
	Checksum string          `json:"checksum"`
	User     json.RawMessage `json:"user"`
}

// sealedRecord is the on-disk envelope when a passphrase is configured.
type sealedRecord struct {
	Sealed bool   `json:"sealed"`
	Salt   string `json:"salt"`
	Nonce  string `json:"nonce"`
	Data   string `json:"data"`
}

// Store persists the session token and a user snapshot across process
// restarts, scoped to the state directory.
//
// Absence is never an error: Load returns zero values for anything missing
// or malformed, and Clear is idempotent.
type Store struct {
	dir        string
	passphrase string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// WithPassphrase enables at-rest sealing of both values with a key derived
// from the passphrase. A wrong passphrase on a later run makes the stored
// session unreadable, which Load reports as absent.
func (s *Store) WithPassphrase(passphrase string) *Store {
	s.passphrase = passphrase
	return s
}

// Save persists the token and user snapshot. The token is written first so
// that a crash mid-save can only leave a token without a snapshot, never a
// snapshot without the token that makes it meaningful.
func (s *Store) Save(token string, user *api.User) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := s.writeFile(tokenFileName, []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	if user == nil {
		// No snapshot to persist; drop any stale one.
		_ = os.Remove(filepath.Join(s.dir, userFileName))
		return nil
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user snapshot: %w", err)
	}

	record, err := json.Marshal(userRecord{
		Checksum: checksum(raw),
		User:     raw,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	if err := s.writeFile(userFileName, record); err != nil {
		return fmt.Errorf("failed to save user snapshot: %w", err)
	}

	return nil
}

// Load reads back the persisted session. Either value can come back absent
// ("" / nil): missing files, malformed JSON, checksum mismatches, and
// undecryptable envelopes all read as absent. A token-less store never
// yields a user snapshot, no matter what the snapshot file contains.
func (s *Store) Load() (string, *api.User) {
	tokenBytes, ok := s.readFile(tokenFileName)
	if !ok || len(tokenBytes) == 0 {
		return "", nil
	}
	token := string(tokenBytes)

	recordBytes, ok := s.readFile(userFileName)
	if !ok {
		return token, nil
	}

	var record userRecord
	if err := json.Unmarshal(recordBytes, &record); err != nil {
		return token, nil
	}
	if record.Checksum != checksum(record.User) {
		return token, nil
	}

	var user api.User
	if err := json.Unmarshal(record.User, &user); err != nil {
		return token, nil
	}

	return token, &user
}

// Token reads only the persisted token. It satisfies the token source
// contract for the HTTP client: every request rereads the store, so a
// cleared session stops authenticating immediately.
func (s *Store) Token() string {
	tokenBytes, ok := s.readFile(tokenFileName)
	if !ok {
		return ""
	}
	return string(tokenBytes)
}

// Clear removes both values unconditionally. Safe to call repeatedly and
// on an already-empty store.
func (s *Store) Clear() {
	_ = os.Remove(filepath.Join(s.dir, tokenFileName))
	_ = os.Remove(filepath.Join(s.dir, userFileName))
}

func checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeFile writes content to a temp file and renames it into place, so a
// crash never leaves a half-written value behind.
func (s *Store) writeFile(name string, content []byte) error {
	if s.passphrase != "" {
		sealed, err := s.seal(content)
		if err != nil {
			return err
		}
		content = sealed
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, path)
}

func (s *Store) readFile(name string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, false
	}

	if s.passphrase != "" {
		plain, err := s.unseal(data)
		if err != nil {
			return nil, false
		}
		return plain, true
	}

	// A sealed envelope read without a passphrase is unreadable: absent.
	var envelope sealedRecord
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Sealed {
		return nil, false
	}

	return data, true
}

// seal encrypts content with AES-256-GCM under a PBKDF2-derived key.
func (s *Store) seal(content []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := s.cipher(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	data := gcm.Seal(nil, nonce, content, nil)

	return json.Marshal(sealedRecord{
		Sealed: true,
		Salt:   base64.StdEncoding.EncodeToString(salt),
		Nonce:  base64.StdEncoding.EncodeToString(nonce),
		Data:   base64.StdEncoding.EncodeToString(data),
	})
}

func (s *Store) unseal(content []byte) ([]byte, error) {
	var envelope sealedRecord
	if err := json.Unmarshal(content, &envelope); err != nil {
		return nil, fmt.Errorf("not a sealed record: %w", err)
	}
	if !envelope.Sealed {
		return nil, fmt.Errorf("not a sealed record")
	}

	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return nil, fmt.Errorf("malformed salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return nil, fmt.Errorf("malformed nonce: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return nil, fmt.Errorf("malformed payload: %w", err)
	}

	gcm, err := s.cipher(salt)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("malformed nonce")
	}

	plain, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plain, nil
}

func (s *Store) cipher(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(s.passphrase), salt, pbkdf2Iterations, sealedKeyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
