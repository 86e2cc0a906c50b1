package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMencionService_SelectAndClear(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMencionService(env.prefs)
	ctx := context.Background()

	m, err := svc.Selected(ctx)
	require.NoError(t, err)
	assert.Nil(t, m)

	require.NoError(t, svc.Select(ctx, "lenguaje"))
	m, err = svc.Selected(ctx)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Lenguaje y Comunicación", m.Name)

	require.NoError(t, svc.Clear(ctx))
	m, err = svc.Selected(ctx)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMencionService_SelectUnknown(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMencionService(env.prefs)

	err := svc.Select(context.Background(), "astronomia")
	assert.ErrorIs(t, err, ErrUnknownMencion)
}

func TestMencionService_StaleStoredID(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMencionService(env.prefs)
	ctx := context.Background()

	require.NoError(t, env.prefs.Set(ctx, prefSelectedMencion, "retired_track"))
	m, err := svc.Selected(ctx)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestMencionService_ListIsACopy(t *testing.T) {
	svc := NewMencionService(nil)
	list := svc.List()
	require.Len(t, list, 4)
	list[0].Name = "changed"
	assert.NotEqual(t, "changed", svc.List()[0].Name)
}
