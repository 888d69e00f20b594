package movements

import (
	"context"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// Resultados posibles de un intento de captura fotográfica.
const (
	CaptureGranted   = "granted"   // permiso concedido y foto capturada
	CaptureDenied    = "denied"    // permiso de cámara/galería denegado
	CaptureCancelled = "cancelled" // el usuario canceló la captura
)

// CaptureResult resultado discriminado del flujo permiso + cámara. Photo
// solo es no-nil cuando Outcome es CaptureGranted.
type CaptureResult struct {
	Outcome string
	Photo   *entity.Photo
}

// Camera puerto del dispositivo de captura. La operación bloquea hasta que
// el usuario completa o cancela la captura; para tests se inyecta un fake.
type Camera interface {
	CapturePhoto(ctx context.Context) (CaptureResult, error)
}

// SessionReader expone la identidad de la sesión activa; el nombre alimenta
// el campo motorista de las subidas de prueba.
type SessionReader interface {
	UserName() string
}
