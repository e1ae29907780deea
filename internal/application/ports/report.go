package ports

import (
	"context"
	"time"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

// StatsReportRenderer genera el reporte de estadísticas del panel admin (PDF).
type StatsReportRenderer interface {
	RenderStats(ctx context.Context, stats entity.Stats, generatedAt time.Time) ([]byte, error)
}
