package file

import (
	"os"
	"strings"
)

// PayRateStore keeps the pay rate in a single text file, replaced wholesale
// on every write. A missing file reads as an absent value, not an error.
type PayRateStore struct {
	Path string
}

func NewPayRateStore(path string) *PayRateStore {
	return &PayRateStore{Path: path}
}

func (s *PayRateStore) Read() (string, error) {
	b, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (s *PayRateStore) Write(value string) error {
	return os.WriteFile(s.Path, []byte(value), 0o644)
}
