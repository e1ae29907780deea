package migrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/infrastructure/migrate"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

func TestNew_ValidaConfiguracion(t *testing.T) {
	_, err := migrate.New("", "../postgres/migrations", logger.Nop())
	assert.Error(t, err)

	_, err = migrate.New("postgres://localhost/db", "", logger.Nop())
	assert.Error(t, err)

	_, err = migrate.New("postgres://localhost/db", "./no-existe", logger.Nop())
	assert.Error(t, err)

	_, err = migrate.New("postgres://localhost/db", "../postgres/migrations", nil)
	require.NoError(t, err)
}
