package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain"
	"github.com/jhoicas/bodega-wms/internal/domain/entity"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// WarehouseUseCase casos de uso de bodegas (alta, consulta y existencia).
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una nueva bodega. Si no se indica ID se genera un UUID.
// Un código repetido devuelve domain.ErrDuplicate.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" {
		return nil, fmt.Errorf("%w: code y name son obligatorios", domain.ErrInvalidInput)
	}
	if in.Capacity.IsNegative() {
		return nil, fmt.Errorf("%w: capacity no puede ser negativa", domain.ErrInvalidInput)
	}
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        id,
		Code:      code,
		Name:      name,
		Location:  strings.TrimSpace(in.Location),
		Status:    entity.WarehouseStatusActive,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID (nil, nil si no existe).
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Exists indica si la bodega existe.
func (uc *WarehouseUseCase) Exists(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	return uc.repo.Exists(ctx, id)
}

// List lista todas las bodegas ordenadas por código.
func (uc *WarehouseUseCase) List(ctx context.Context) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// requireWarehouse devuelve domain.ErrNotFound si la bodega no existe.
func requireWarehouse(ctx context.Context, repo repository.WarehouseRepository, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: warehouse_id es obligatorio", domain.ErrInvalidInput)
	}
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("verificar bodega: %w", err)
	}
	if !ok {
		return fmt.Errorf("bodega %q: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:           w.ID,
		Code:         w.Code,
		Name:         w.Name,
		Location:     w.Location,
		Status:       w.Status,
		Capacity:     w.Capacity,
		UsedCapacity: w.UsedCapacity,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
