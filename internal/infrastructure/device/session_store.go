package device

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSessionStore implementa auth.SessionStore sobre un archivo JSON en el
// directorio de config del usuario. El único estado durable del cliente son
// estas dos claves; Clear las elimina en el logout.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore construye el almacén sobre la ruta indicada.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

type sessionFile struct {
	UserName    string `json:"userName"`
	UserProfile string `json:"userProfile"`
}

// Save persiste nombre y perfil de la sesión.
func (s *FileSessionStore) Save(name, profile string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	raw, err := json.Marshal(sessionFile{UserName: name, UserProfile: profile})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("escribir sesión: %w", err)
	}
	return nil
}

// Load recupera la sesión persistida. Sin archivo no hay error: devuelve
// valores vacíos (no hay sesión previa).
func (s *FileSessionStore) Load() (string, string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("leer sesión: %w", err)
	}
	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return "", "", fmt.Errorf("decodificar sesión: %w", err)
	}
	return f.UserName, f.UserProfile, nil
}

// Clear elimina la sesión persistida; que no exista no es un error.
func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
