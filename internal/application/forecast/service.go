// Package forecast mantiene la máquina de estados del pronóstico de ventas y
// la política de degradación al generador determinista local.
package forecast

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amethystakira/KiranaDash/internal/application/dto"
	"github.com/amethystakira/KiranaDash/internal/application/ports"
	"github.com/amethystakira/KiranaDash/internal/domain/entity"
	"github.com/amethystakira/KiranaDash/internal/domain/repository"
	"github.com/amethystakira/KiranaDash/pkg/logger"
)

// Estados del pronóstico tal como los consume la vista.
const (
	StatusUnstarted = "unstarted"
	StatusLoading   = "loading"
	StatusReady     = "ready"
	StatusFailed    = "failed"
)

const (
	// minDisplayDelay duración mínima de una actualización visible. Una
	// respuesta instantánea (fallback local, caché del proveedor) haría
	// parpadear el estado loading; se estira hasta este mínimo.
	minDisplayDelay = 800 * time.Millisecond

	maxHistoryPoints = 7
	maxStockProducts = 10
)

// Service orquesta las actualizaciones del pronóstico. Las actualizaciones
// concurrentes no se deduplican ni se secuencian: cada llamada a Refresh corre
// completa y publica al terminar, de modo que la última respuesta en
// resolverse es la que queda visible aunque haya arrancado antes que otra.
type Service struct {
	provider ports.ForecastProvider // nil → siempre fallback local
	repo     repository.LedgerRepository
	log      *logger.Logger
	now      func() time.Time
	rng      *rand.Rand
	minDelay time.Duration

	mu        sync.Mutex
	status    string
	result    *dto.ForecastResultDTO
	updatedAt time.Time
}

// NewService construye el servicio. provider puede ser nil cuando no hay
// clave de API configurada; en ese caso todas las actualizaciones usan el
// generador local.
func NewService(provider ports.ForecastProvider, repo repository.LedgerRepository, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		repo:     repo,
		log:      log,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		minDelay: minDisplayDelay,
		status:   StatusUnstarted,
	}
}

// State snapshot del estado actual de la máquina. Result y UpdatedAt solo se
// incluyen cuando hay un pronóstico publicado.
func (s *Service) State() *dto.ForecastStateDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &dto.ForecastStateDTO{Status: s.status}
	if s.result != nil {
		st.Result = s.result
		t := s.updatedAt
		st.UpdatedAt = &t
	}
	return st
}

// Refresh ejecuta una actualización completa: toma un snapshot del libro,
// consulta al proveedor remoto y, si este falla o no está configurado, degrada
// al generador local. La transición a loading es inmediata; el resultado no se
// publica antes de minDisplayDelay desde el inicio.
func (s *Service) Refresh(ctx context.Context) (*dto.ForecastResultDTO, error) {
	start := s.now()

	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	result, err := s.generate(ctx)

	// Estirar hasta el mínimo visible incluso si la generación falló: el
	// estado failed tampoco debe aparecer como un parpadeo.
	if remaining := s.minDelay - s.now().Sub(start); remaining > 0 {
		select {
		case <-time.After(remaining):
		case <-ctx.Done():
			err = ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.status = StatusFailed
		return nil, err
	}
	s.status = StatusReady
	s.result = result
	s.updatedAt = s.now()
	return result, nil
}

func (s *Service) generate(ctx context.Context) (*dto.ForecastResultDTO, error) {
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("forecast: snapshot: %w", err)
	}

	history := historyInput(snap)
	if s.provider != nil {
		result, provErr := s.provider.GenerateSalesForecast(ctx, history, stockInput(snap))
		if provErr == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, provErr
		}
		s.log.Warn().Err(provErr).Msg("proveedor de pronósticos falló, usando generador local")
	}

	// rand.Rand no es seguro para uso concurrente; se comparte bajo el mutex.
	s.mu.Lock()
	result := FallbackForecast(history, s.now(), s.rng)
	s.mu.Unlock()
	return result, nil
}

// historyInput últimos 7 días del historial, del más antiguo al más reciente.
func historyInput(snap *entity.LedgerSnapshot) []dto.HistoryPointDTO {
	stats := snap.History
	if len(stats) > maxHistoryPoints {
		stats = stats[len(stats)-maxHistoryPoints:]
	}
	out := make([]dto.HistoryPointDTO, 0, len(stats))
	for _, d := range stats {
		out = append(out, dto.HistoryPointDTO{Date: d.Date, Sales: d.Sales})
	}
	return out
}

// stockInput primeros 10 productos del catálogo.
func stockInput(snap *entity.LedgerSnapshot) []dto.StockSnapshotDTO {
	products := snap.Products
	if len(products) > maxStockProducts {
		products = products[:maxStockProducts]
	}
	out := make([]dto.StockSnapshotDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.StockSnapshotDTO{Name: p.Name, Stock: p.Stock})
	}
	return out
}

// FallbackForecast generador local de pronósticos: siete días a partir de
// mañana, sin alertas de stock. Con historial real proyecta un rango típico de
// ventas con confianza alta; sin historial produce una rampa sintética de
// demostración con confianza baja.
//
// El perfil de ruido es deliberadamente simple; la gracia del fallback es que
// la vista siempre tiene algo plausible que mostrar, no la precisión.
func FallbackForecast(history []dto.HistoryPointDTO, now time.Time, rng *rand.Rand) *dto.ForecastResultDTO {
	quarter := decimal.RequireFromString("0.25")

	forecast := make([]dto.DayPredictionDTO, 0, 7)
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, i+1).Format("Mon")

		var sales decimal.Decimal
		var confidence int
		if len(history) == 0 {
			// Rampa de demostración: base aleatoria más 50 por día.
			sales = decimal.NewFromInt(int64(rng.Intn(200) + i*50))
			confidence = 40
		} else {
			sales = decimal.NewFromInt(int64(5500 + rng.Intn(1500)))
			confidence = 85 + rng.Intn(10) // [85, 95)
		}

		forecast = append(forecast, dto.DayPredictionDTO{
			Day:             day,
			PredictedSales:  sales,
			PredictedProfit: sales.Mul(quarter).Floor(),
			Confidence:      confidence,
		})
	}

	return &dto.ForecastResultDTO{
		Forecast:    forecast,
		StockAlerts: []dto.StockAlertDTO{},
	}
}
