package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-wms/internal/application/dto"
	"github.com/jhoicas/bodega-wms/internal/domain/repository"
)

// ReportGenerator renderiza los resultados de análisis como documento (PDF).
type ReportGenerator interface {
	GenerateABCReport(ctx context.Context, warehouse *dto.WarehouseResponse, result *dto.ABCAnalysisResult) ([]byte, error)
	GenerateDeadStockReport(ctx context.Context, warehouse *dto.WarehouseResponse, result *dto.DeadStockAnalysisResult) ([]byte, error)
}

// ReportUseCase ejecuta un análisis y lo exporta con el generador configurado.
type ReportUseCase struct {
	analysis   *AnalysisUseCase
	warehouses repository.WarehouseRepository
	generator  ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analysis *AnalysisUseCase, warehouses repository.WarehouseRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{analysis: analysis, warehouses: warehouses, generator: generator}
}

// ABCReport genera el reporte ABC de la bodega.
func (uc *ReportUseCase) ABCReport(ctx context.Context, req dto.ABCAnalysisRequest) ([]byte, error) {
	result, err := uc.analysis.PerformABCAnalysis(ctx, req)
	if err != nil {
		return nil, err
	}
	wh, err := uc.warehouse(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateABCReport(ctx, wh, result)
}

// DeadStockReport genera el reporte de stock muerto de la bodega.
func (uc *ReportUseCase) DeadStockReport(ctx context.Context, req dto.DeadStockAnalysisRequest) ([]byte, error) {
	result, err := uc.analysis.PerformDeadStockAnalysis(ctx, req)
	if err != nil {
		return nil, err
	}
	wh, err := uc.warehouse(ctx, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateDeadStockReport(ctx, wh, result)
}

func (uc *ReportUseCase) warehouse(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.warehouses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reporte: bodega: %w", err)
	}
	if w == nil {
		return &dto.WarehouseResponse{ID: id, Code: id, Name: id}, nil
	}
	return toWarehouseResponse(w), nil
}
