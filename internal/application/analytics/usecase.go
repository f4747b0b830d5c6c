package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/domain/repository"
)

// TrendsReportGenerator puerto de salida para la exportación del reporte de
// tendencias (el adaptador concreto vive en infrastructure/pdf).
type TrendsReportGenerator interface {
	GenerateTrendsReport(ctx context.Context, trends *dto.TrendsDTO, dashboard *dto.DashboardDTO, date time.Time) ([]byte, error)
}

// UseCase expone las lecturas derivadas del libro diario. Sin estado propio:
// cada invocación toma un snapshot fresco y recalcula.
type UseCase struct {
	repo      repository.LedgerRepository
	reportGen TrendsReportGenerator
	now       func() time.Time
}

// NewUseCase construye el caso de uso. reportGen puede ser nil si la
// exportación PDF no está habilitada.
func NewUseCase(repo repository.LedgerRepository, reportGen TrendsReportGenerator) *UseCase {
	return &UseCase{repo: repo, reportGen: reportGen, now: time.Now}
}

// GetDashboard métricas del día para la vista principal.
func (uc *UseCase) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	return ComputeDashboard(snap), nil
}

// GetTrends desgloses por hora y categoría más la serie diaria.
func (uc *UseCase) GetTrends(ctx context.Context) (*dto.TrendsDTO, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	return ComputeTrends(snap, uc.now()), nil
}

// GetTrendsReport genera el PDF descargable del reporte de tendencias.
func (uc *UseCase) GetTrendsReport(ctx context.Context) ([]byte, error) {
	if uc.reportGen == nil {
		return nil, fmt.Errorf("analytics: exportación de reportes no configurada")
	}
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: snapshot: %w", err)
	}
	now := uc.now()
	report, err := uc.reportGen.GenerateTrendsReport(ctx, ComputeTrends(snap, now), ComputeDashboard(snap), now)
	if err != nil {
		return nil, fmt.Errorf("analytics: generar reporte: %w", err)
	}
	return report, nil
}
