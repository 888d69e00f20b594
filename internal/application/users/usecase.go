package users

import (
	"context"
	"fmt"

	"github.com/jhoicas/movilog-app/internal/application/dto"
	"github.com/jhoicas/movilog-app/internal/domain"
	"github.com/jhoicas/movilog-app/internal/domain/entity"
	"github.com/jhoicas/movilog-app/internal/domain/gateway"
)

// UseCase gestión de cuentas: listado, alta, edición y alternado de estado.
// La validación de campos obligatorios ocurre antes de cualquier petición.
type UseCase struct {
	userGW gateway.UserGateway
}

// NewUseCase construye el caso de uso de usuarios.
func NewUseCase(userGW gateway.UserGateway) *UseCase {
	return &UseCase{userGW: userGW}
}

// List devuelve las cuentas registradas.
func (uc *UseCase) List(ctx context.Context) ([]entity.User, error) {
	return uc.userGW.List(ctx)
}

// Register valida el formulario y da de alta la cuenta. La contraseña y su
// confirmación deben coincidir (ErrPasswordMismatch si no).
func (uc *UseCase) Register(ctx context.Context, form dto.UserForm) (*entity.User, error) {
	if err := validateForm(form, true); err != nil {
		return nil, err
	}
	return uc.userGW.Register(ctx, toInput(form))
}

// Update valida y edita una cuenta existente. La contraseña es opcional en
// edición; si viene, debe coincidir con la confirmación.
func (uc *UseCase) Update(ctx context.Context, id int, form dto.UserForm) (*entity.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id de usuario", domain.ErrInvalidInput)
	}
	if err := validateForm(form, false); err != nil {
		return nil, err
	}
	return uc.userGW.Update(ctx, id, toInput(form))
}

// ToggleStatus alterna activo/inactivo en el servidor y devuelve el estado
// resultante, que el llamador parchea en su vista local.
func (uc *UseCase) ToggleStatus(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id de usuario", domain.ErrInvalidInput)
	}
	return uc.userGW.ToggleStatus(ctx, id)
}

func validateForm(form dto.UserForm, passwordRequired bool) error {
	if form.Name == "" || form.Email == "" || form.Document == "" {
		return fmt.Errorf("%w: nombre, email y documento son obligatorios", domain.ErrInvalidInput)
	}
	if !entity.ValidProfile(form.Profile) {
		return fmt.Errorf("%w: perfil %q (se espera motorista o filial)", domain.ErrInvalidInput, form.Profile)
	}
	if passwordRequired && form.Password == "" {
		return fmt.Errorf("%w: la contraseña es obligatoria", domain.ErrInvalidInput)
	}
	if form.Password != form.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	return nil
}

func toInput(form dto.UserForm) gateway.UserInput {
	return gateway.UserInput{
		Name:        form.Name,
		Profile:     form.Profile,
		Document:    form.Document,
		FullAddress: form.FullAddress,
		Email:       form.Email,
		Password:    form.Password,
	}
}
