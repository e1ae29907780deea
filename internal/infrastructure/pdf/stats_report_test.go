package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/domain/entity"
)

func TestRenderStats_GeneraPDF(t *testing.T) {
	g := NewStatsReportGenerator("ceramicas-api")
	st := entity.Stats{
		Users: entity.UserStats{Total: 3, Active: 2, Inactive: 1},
		Products: entity.ProductStats{
			Total: 4, Available: 3, Unavailable: 1,
			ByCategory: []entity.CategoryCount{{Category: "tazas", Count: 3}, {Category: "platos", Count: 1}},
		},
	}

	out, err := g.RenderStats(context.Background(), st, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestRenderStats_SinProductos(t *testing.T) {
	out, err := NewStatsReportGenerator("x").RenderStats(context.Background(), entity.Stats{}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", percent(0, 0))
	assert.Equal(t, "75.0%", percent(3, 4))
}
