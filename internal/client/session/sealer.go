package session

import (
	"fmt"

	"github.com/dmitrijs2005/formsclient/internal/cryptox"
)

// Sealer encrypts bearer tokens before they touch disk. A nil *Sealer is
// valid and stores tokens as plain bytes.
type Sealer struct {
	key []byte
}

// NewSealer derives a sealing key from passphrase and salt. It returns nil
// when passphrase is empty.
func NewSealer(passphrase string, salt []byte) *Sealer {
	if passphrase == "" {
		return nil
	}
	return &Sealer{key: cryptox.DeriveKey([]byte(passphrase), salt)}
}

func (s *Sealer) SealToken(token string) ([]byte, error) {
	if s == nil {
		return []byte(token), nil
	}
	return cryptox.Seal([]byte(token), s.key)
}

func (s *Sealer) OpenToken(b []byte) (string, error) {
	if s == nil {
		return string(b), nil
	}
	plain, err := cryptox.Open(b, s.key)
	if err != nil {
		return "", fmt.Errorf("open sealed token: %w", err)
	}
	return string(plain), nil
}
