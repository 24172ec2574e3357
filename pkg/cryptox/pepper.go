package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// pepperLength is the number of random bytes in a generated pepper.
const pepperLength = 32

// LoadPepper reads the pepper stored at path. When the file does not exist a
// new random pepper is generated and written there with 0600 permissions, so
// restarts keep verifying hashes created by earlier runs.
func LoadPepper(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("cryptox: pepper path is empty")
	}
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		pepper := strings.TrimSpace(string(b))
		if pepper == "" {
			return "", fmt.Errorf("cryptox: pepper file %s is empty", path)
		}
		return pepper, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("cryptox: read pepper: %w", err)
	}

	// 1. Make sure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("cryptox: create pepper dir: %w", err)
	}

	// 2. Generate a fresh pepper
	buf := make([]byte, pepperLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: generate pepper: %w", err)
	}
	pepper := base64.RawURLEncoding.EncodeToString(buf)

	// 3. Persist it
	if err := os.WriteFile(path, []byte(pepper), 0600); err != nil {
		return "", fmt.Errorf("cryptox: write pepper: %w", err)
	}
	return pepper, nil
}
