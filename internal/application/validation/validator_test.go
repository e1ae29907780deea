package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ceramicas-api/internal/application/dto"
	"github.com/jhoicas/ceramicas-api/internal/application/validation"
	"github.com/jhoicas/ceramicas-api/internal/domain"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestStruct_ProductoValido(t *testing.T) {
	price := decimal.NewFromInt(0)
	in := dto.CreateProductRequest{
		Name:        "Taza",
		Description: "Taza de gres esmaltada",
		Price:       &price,
		Category:    "tazas",
		Images:      []string{"https://cdn.example.com/taza.jpg"},
	}
	assert.NoError(t, validation.New().Struct(in))
}

func TestStruct_ReportaTodosLosCampos(t *testing.T) {
	neg := decimal.NewFromInt(-5)
	stock := -1
	in := dto.CreateProductRequest{
		Name:        "ab",
		Description: "corta",
		Price:       &neg,
		Category:    "sillas",
		Stock:       &stock,
	}
	got := fields(t, validation.New().Struct(in))

	assert.Len(t, got, 5)
	assert.Contains(t, got["price"], "price")
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "description")
	assert.Contains(t, got, "category")
	assert.Contains(t, got, "stock")
}

func TestStruct_PrecioAusente(t *testing.T) {
	in := dto.CreateProductRequest{Name: "Jarrón", Description: "Jarrón alto de barro"}
	got := fields(t, validation.New().Struct(in))

	assert.Equal(t, "price is required", got["price"])
}

func TestStruct_DimensionesAnidadas(t *testing.T) {
	price := decimal.NewFromInt(10)
	in := dto.CreateProductRequest{
		Name:        "Plato",
		Description: "Plato llano de porcelana",
		Price:       &price,
		Dimensions:  &dto.DimensionsDTO{Height: decimal.NewFromInt(-1)},
	}
	got := fields(t, validation.New().Struct(in))

	assert.Contains(t, got, "dimensions.height")
}

func TestStruct_UpdateParcial(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(dto.UpdateProductRequest{}), "sin campos no hay violaciones")

	empty := ""
	got := fields(t, v.Struct(dto.UpdateProductRequest{Name: &empty}))
	assert.Contains(t, got, "name", "un nombre vacío explícito debe fallar")
}

func TestStruct_Registro(t *testing.T) {
	got := fields(t, validation.New().Struct(dto.RegisterRequest{Name: "Al", Email: "no-email", Password: "123"}))

	assert.Contains(t, got, "name")
	assert.Equal(t, "email must be a valid email", got["email"])
	assert.Equal(t, "password must be at least 6 characters", got["password"])
}

func TestStruct_TopesDeColumna(t *testing.T) {
	price := decimal.NewFromInt(100_000_000_000)
	weight := decimal.NewFromInt(1_000_000_000)
	stock := 3_000_000_000
	in := dto.CreateProductRequest{
		Name:        "Jarrón",
		Description: "Jarrón alto de barro",
		Price:       &price,
		Stock:       &stock,
		Weight:      &weight,
		Dimensions:  &dto.DimensionsDTO{Height: decimal.NewFromInt(100_000_000)},
	}
	got := fields(t, validation.New().Struct(in))

	assert.Len(t, got, 4)
	assert.Equal(t, "price must be less than or equal to 9999999999.99", got["price"])
	assert.Equal(t, "stock must be less than or equal to 2147483647", got["stock"])
	assert.Equal(t, "weight must be less than or equal to 99999999.99", got["weight"])
	assert.Contains(t, got, "dimensions.height")
}

func TestStruct_TopesDeColumna_LimiteExactoEsValido(t *testing.T) {
	price := decimal.RequireFromString("9999999999.99")
	weight := decimal.RequireFromString("99999999.99")
	stock := 2147483647
	in := dto.UpdateProductRequest{Price: &price, Weight: &weight, Stock: &stock}
	assert.NoError(t, validation.New().Struct(in))
}

func TestStruct_CategoriaFueraDelEnum(t *testing.T) {
	cat := "sillas"
	got := fields(t, validation.New().Struct(dto.UpdateProductRequest{Category: &cat}))

	assert.Equal(t, "category must be one of: jarrones, platos, tazas, cuencos, decoracion, otros", got["category"])
}
