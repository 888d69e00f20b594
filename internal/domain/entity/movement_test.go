package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/movilog-app/internal/domain/entity"
)

// TestMovement_AccionesPorEstado: desde created solo se puede iniciar, desde
// in_transit solo finalizar y completed es terminal (sin acciones).
func TestMovement_AccionesPorEstado(t *testing.T) {
	cases := []struct {
		status    entity.Status
		canStart  bool
		canFinish bool
		isFinal   bool
	}{
		{entity.StatusCreated, true, false, false},
		{entity.StatusInTransit, false, true, false},
		{entity.StatusCompleted, false, false, true},
	}

	for _, tc := range cases {
		m := entity.Movement{ID: 7, Status: tc.status}
		assert.Equal(t, tc.canStart, m.CanStart(), "CanStart en %s", tc.status)
		assert.Equal(t, tc.canFinish, m.CanFinish(), "CanFinish en %s", tc.status)
		assert.Equal(t, tc.isFinal, m.IsFinal(), "IsFinal en %s", tc.status)
	}
}

// TestValidProfile: solo motorista y filial son perfiles aceptados.
func TestValidProfile(t *testing.T) {
	assert.True(t, entity.ValidProfile(entity.ProfileMotorista))
	assert.True(t, entity.ValidProfile(entity.ProfileFilial))
	assert.False(t, entity.ValidProfile("admin"))
	assert.False(t, entity.ValidProfile(""))
}
