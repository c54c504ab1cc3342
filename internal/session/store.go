// Package session concentra el único estado compartido de la consola: el token de
// sesión. Un solo camino escribe (login, logout, expiración detectada y el 401
// del cliente HTTP) y muchas pantallas leen a través de Authority.
package session

import "sync"

// Store persistencia del token bajo una única clave. Token devuelve "" si no hay.
type Store interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// MemoryStore Store en memoria, seguro para uso concurrente.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore crea un store con un token inicial (puede ser "").
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

// Token token guardado o "".
func (s *MemoryStore) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// SetToken reemplaza el token.
func (s *MemoryStore) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Clear borra el token.
func (s *MemoryStore) Clear() error {
	return s.SetToken("")
}
