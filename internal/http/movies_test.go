package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmoteca/peliculas-api/internal/entities"
)

const inceptionJSON = `{
	"titulo": "Inception",
	"director": "Christopher Nolan",
	"genero": "Ciencia Ficción, Acción",
	"duracion": 148,
	"año": 2010,
	"clasificacion": "PG-13",
	"sinopsis": "Un ladrón que roba secretos mediante tecnología de sueños."
}`

func TestMoviesController_Create(t *testing.T) {
	t.Run("creates a movie", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/peliculas", inceptionJSON)
		assert.Equal(t, http.StatusCreated, w.Code)

		var created entities.Movie
		decodeJSON(t, w, &created)
		assert.Greater(t, created.ID, uint(0))
		assert.Equal(t, "Inception", created.Title)
		assert.Equal(t, 2010, created.Year)
	})

	t.Run("rejects a year before cinema existed", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/peliculas",
			`{"titulo": "X", "director": "Y", "genero": "Drama", "duracion": 90, "año": 1500, "clasificacion": "PG"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Year")
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, router, cleanup := setupTestServer(t)
		defer cleanup()

		w := doJSON(t, router, "POST", "/api/peliculas",
			`{"titulo": "X", "director": "Y", "genero": "Drama", "duracion": -10, "año": 2000, "clasificacion": "PG"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMoviesController_GetUpdateDelete(t *testing.T) {
	_, router, cleanup := setupTestServer(t)
	defer cleanup()

	w := doJSON(t, router, "POST", "/api/peliculas", inceptionJSON)
	require.Equal(t, http.StatusCreated, w.Code)
	var created entities.Movie
	decodeJSON(t, w, &created)

	// Get
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/peliculas/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var fetched entities.Movie
	decodeJSON(t, w, &fetched)
	assert.Equal(t, created.Title, fetched.Title)

	// Partial update
	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/peliculas/%d", created.ID), `{"clasificacion": "R"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var updated entities.Movie
	decodeJSON(t, w, &updated)
	assert.Equal(t, "R", updated.Rating)
	assert.Equal(t, "Inception", updated.Title)

	// Delete
	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/peliculas/%d", created.ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/peliculas/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoviesController_List(t *testing.T) {
	_, router, cleanup := setupTestServer(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/api/peliculas", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var empty PaginatedResponse
	decodeJSON(t, w, &empty)
	assert.Equal(t, int64(0), empty.Total)
	assert.Empty(t, empty.Data)

	w = doJSON(t, router, "POST", "/api/peliculas", inceptionJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "GET", "/api/peliculas", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response PaginatedResponse
	decodeJSON(t, w, &response)
	assert.Equal(t, int64(1), response.Total)
	assert.Equal(t, 1, response.TotalPages)
	assert.Len(t, response.Data, 1)
}
