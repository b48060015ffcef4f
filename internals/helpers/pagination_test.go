package helper_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "docentia_backend/internals/helpers"
)

func resolver(t *testing.T, target string, defaultPerPage, maxPerPage int) helper.Paging {
	t.Helper()

	var got helper.Paging
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		got = helper.ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolver(t, "/x?page=3&perPage=15", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 30, p.Offset)

	// valores por defecto y alias limit
	p = resolver(t, "/x", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)

	p = resolver(t, "/x?limit=7", 20, 100)
	assert.Equal(t, 7, p.PerPage)

	// entradas fuera de rango se normalizan
	p = resolver(t, "/x?page=-2&perPage=0", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)

	p = resolver(t, "/x?perPage=500", 20, 100)
	assert.Equal(t, 100, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	pg := helper.BuildPagination(45, 2, 20)
	assert.EqualValues(t, 45, pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = helper.BuildPagination(0, 1, 20)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
