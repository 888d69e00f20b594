// Package device adapta las capacidades del dispositivo: la cámara (como
// spool de capturas en disco) y el almacén clave-valor de sesión.
package device

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jhoicas/movilog-app/internal/application/movements"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// SpoolCamera implementa movements.Camera leyendo la captura más reciente de
// un directorio local donde la herramienta de captura deja las fotos.
//
// Mapeo del resultado discriminado: directorio sin permiso de lectura ->
// denegada; directorio vacío o inexistente -> cancelada (el usuario no
// capturó); foto encontrada -> concedida. La foto consumida se elimina del
// spool para que dos transiciones no reutilicen la misma prueba.
type SpoolCamera struct {
	dir string
}

// NewSpoolCamera construye la cámara sobre el directorio de capturas.
func NewSpoolCamera(dir string) *SpoolCamera {
	return &SpoolCamera{dir: dir}
}

var photoMIMEs = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// CapturePhoto bloquea (desde la perspectiva del controlador) hasta resolver
// la captura; en esta implementación la resolución es inmediata contra el
// estado del spool.
func (c *SpoolCamera) CapturePhoto(ctx context.Context) (movements.CaptureResult, error) {
	if err := ctx.Err(); err != nil {
		return movements.CaptureResult{}, err
	}

	entries, err := os.ReadDir(c.dir)
	switch {
	case errors.Is(err, fs.ErrPermission):
		return movements.CaptureResult{Outcome: movements.CaptureDenied}, nil
	case errors.Is(err, fs.ErrNotExist):
		return movements.CaptureResult{Outcome: movements.CaptureCancelled}, nil
	case err != nil:
		return movements.CaptureResult{}, fmt.Errorf("leer spool de capturas: %w", err)
	}

	candidates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := photoMIMEs[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			candidates = append(candidates, e.Name())
		}
	}
	if len(candidates) == 0 {
		return movements.CaptureResult{Outcome: movements.CaptureCancelled}, nil
	}
	sort.Strings(candidates)
	name := candidates[len(candidates)-1]

	path := filepath.Join(c.dir, name)
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrPermission) {
		return movements.CaptureResult{Outcome: movements.CaptureDenied}, nil
	}
	if err != nil {
		return movements.CaptureResult{}, fmt.Errorf("leer captura %s: %w", name, err)
	}
	_ = os.Remove(path)

	return movements.CaptureResult{
		Outcome: movements.CaptureGranted,
		Photo: &entity.Photo{
			Name:    name,
			MIME:    photoMIMEs[strings.ToLower(filepath.Ext(name))],
			Content: content,
		},
	}, nil
}
