package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/application/usecase"
	"github.com/jhoicas/bodega-wms/internal/domain"
)

func TestWarehouseUseCase_Create(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())

	out, err := uc.Create(ctx, dto.CreateWarehouseRequest{Code: " WH-1 ", Name: "Principal", Capacity: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, "WH-1", out.Code)
	assert.Equal(t, "active", out.Status)
	_, err = uuid.Parse(out.ID)
	assert.NoError(t, err, "sin ID se genera un UUID")

	ok, err := uc.Exists(ctx, out.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = uc.Create(ctx, dto.CreateWarehouseRequest{Code: "WH-1", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestWarehouseUseCase_CreateConIDExplicito(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	out, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{ID: "WH-9", Code: "C9", Name: "Norte"})
	require.NoError(t, err)
	assert.Equal(t, "WH-9", out.ID)
}

func TestWarehouseUseCase_CreateInvalido(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Code: "", Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateWarehouseRequest{Code: "C", Name: "x", Capacity: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseUseCase_ListYGet(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo("WH-1", "WH-2"))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)

	w, err := uc.GetByID(ctx, "WH-2")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "Bodega WH-2", w.Name)

	w, err = uc.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, w)

	ok, err := uc.Exists(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}
