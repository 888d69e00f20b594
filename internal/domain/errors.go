package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los de validación local se detectan antes de emitir cualquier petición;
// los de permiso abortan la transición en curso sin tocar estado; transporte
// y rechazo del servidor se reportan de forma genérica al usuario.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidRoute       = errors.New("la filial de origen y destino deben ser diferentes")
	ErrInsufficientStock  = errors.New("stock insuficiente para este movimiento")
	ErrUnresolvedStock    = errors.New("stock del producto no resuelto en la filial de origen")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrCameraPermission   = errors.New("permiso de cámara denegado")
	ErrCaptureCancelled   = errors.New("captura de foto cancelada")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrServerRejection    = errors.New("el servidor rechazó la operación")
	ErrTransport          = errors.New("no fue posible completar la petición")
)
