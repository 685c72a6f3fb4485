package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"talkerbase/internal/domain/talker"
	"talkerbase/internal/infrastructure/storage/file"
)

const testToken = "7mqavabrbvn3nrvp"

func seedTalkers() []talker.Talker {
	return []talker.Talker{
		{ID: 1, Name: "Henrique Moraes", Age: 49, Talk: talker.Talk{WatchedAt: "23/10/2020", Rate: 5}},
		{ID: 2, Name: "Heloísa Albuquerque", Age: 67, Talk: talker.Talk{WatchedAt: "23/10/2020", Rate: 5}},
	}
}

func newTestAPI(t *testing.T, seed []talker.Talker) (*chi.Mux, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "talker.json")
	store := file.New(path, slog.Default())
	if seed != nil {
		require.NoError(t, store.Save(context.Background(), seed))
	}

	return New(store, slog.Default()), path
}

func do(t *testing.T, mux *chi.Mux, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func errorMessageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAPI_Root(t *testing.T) {
	mux, _ := newTestAPI(t, nil)

	rec := do(t, mux, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestAPI_ListTalkers(t *testing.T) {
	t.Run("returns the seeded collection", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodGet, "/talker", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []talker.Talker
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, seedTalkers(), got)
	})

	t.Run("empty store yields an empty array, not null", func(t *testing.T) {
		mux, _ := newTestAPI(t, nil)

		rec := do(t, mux, http.MethodGet, "/talker", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("store failure degrades to an empty array", func(t *testing.T) {
		mux, path := newTestAPI(t, seedTalkers())
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		rec := do(t, mux, http.MethodGet, "/talker", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestAPI_FindTalker(t *testing.T) {
	mux, _ := newTestAPI(t, seedTalkers())

	t.Run("existing id returns exactly that record and nothing more", func(t *testing.T) {
		rec := do(t, mux, http.MethodGet, "/talker/2", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"id":2,"name":"Heloísa Albuquerque","age":67,"talk":{"watchedAt":"23/10/2020","rate":5}}`,
			rec.Body.String())
	})

	t.Run("unknown numeric id returns 404 with the bare message body", func(t *testing.T) {
		rec := do(t, mux, http.MethodGet, "/talker/999", "", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Pessoa palestrante não encontrada"}`, rec.Body.String())
	})
}

func TestAPI_Login(t *testing.T) {
	mux, _ := newTestAPI(t, nil)

	t.Run("valid credentials issue a 16-character token", func(t *testing.T) {
		rec := do(t, mux, http.MethodPost, "/login", "", map[string]string{
			"email":    "ana@email.com",
			"password": "123456",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Regexp(t, "^[0-9a-f]{16}$", body.Token)
		assert.NotContains(t, rec.Body.String(), "$schema")
	})

	t.Run("invalid email reports 400", func(t *testing.T) {
		rec := do(t, mux, http.MethodPost, "/login", "", map[string]string{
			"email":    "not-an-email",
			"password": "123456",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `O "email" deve ter o formato "email@email.com"`, errorMessageOf(t, rec))
	})

	t.Run("short password reports 400", func(t *testing.T) {
		rec := do(t, mux, http.MethodPost, "/login", "", map[string]string{
			"email":    "ana@email.com",
			"password": "123",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `O "password" deve ter pelo menos 6 caracteres`, errorMessageOf(t, rec))
	})
}

func TestAPI_CreateTalker(t *testing.T) {
	validBody := func() map[string]any {
		return map[string]any{
			"name": "Ana Silva",
			"age":  20,
			"talk": map[string]any{"watchedAt": "01/01/2024", "rate": 3},
		}
	}

	t.Run("valid payload creates with the next id", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodPost, "/talker", testToken, validBody())

		require.Equal(t, http.StatusCreated, rec.Code)
		var got talker.Talker
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 3, got.ID, "id must be one greater than the prior collection size")
		assert.Equal(t, "Ana Silva", got.Name)

		list := do(t, mux, http.MethodGet, "/talker/3", "", nil)
		assert.Equal(t, http.StatusOK, list.Code)
	})

	t.Run("missing token reports 401 even with a valid body", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodPost, "/talker", "", validBody())

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token não encontrado", errorMessageOf(t, rec))
	})

	t.Run("wrong token length reports 401", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodPost, "/talker", "short", validBody())

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token inválido", errorMessageOf(t, rec))
	})

	t.Run("validation errors follow the canonical order", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		body := validBody()
		body["name"] = "An"
		delete(body, "age")
		rec := do(t, mux, http.MethodPost, "/talker", testToken, body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `O "name" deve ter pelo menos 3 caracteres`, errorMessageOf(t, rec))
	})

	t.Run("non-numeric age reaches the integer rule with a 400", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		body := validBody()
		body["age"] = "vinte"
		rec := do(t, mux, http.MethodPost, "/talker", testToken, body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `O campo "age" deve ser um número inteiro igual ou maior que 18`, errorMessageOf(t, rec))
	})

	t.Run("rate zero reports the required message", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		body := validBody()
		body["talk"] = map[string]any{"watchedAt": "01/01/2024", "rate": 0}
		rec := do(t, mux, http.MethodPost, "/talker", testToken, body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, `O campo "rate" é obrigatório`, errorMessageOf(t, rec))
	})

	t.Run("store failure on the write path reports the generic 500", func(t *testing.T) {
		mux, path := newTestAPI(t, seedTalkers())
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		rec := do(t, mux, http.MethodPost, "/talker", testToken, validBody())

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Erro interno do servidor", errorMessageOf(t, rec))
	})
}

func TestAPI_UpdateTalker(t *testing.T) {
	body := map[string]any{
		"name": "Heloísa A. Prado",
		"age":  68,
		"talk": map[string]any{"watchedAt": "02/02/2024", "rate": 4},
	}

	t.Run("replaces every field but the id", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodPut, "/talker/2", testToken, body)

		require.Equal(t, http.StatusOK, rec.Code)
		var got talker.Talker
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, talker.Talker{
			ID: 2, Name: "Heloísa A. Prado", Age: 68,
			Talk: talker.Talk{WatchedAt: "02/02/2024", Rate: 4},
		}, got)
	})

	t.Run("unknown fields in the body are ignored", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		// A client echoing the record back includes the id; the path wins.
		echoed := map[string]any{
			"id":   999,
			"name": "Heloísa A. Prado",
			"age":  68,
			"talk": map[string]any{"watchedAt": "02/02/2024", "rate": 4},
		}
		rec := do(t, mux, http.MethodPut, "/talker/2", testToken, echoed)

		require.Equal(t, http.StatusOK, rec.Code)
		var got talker.Talker
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 2, got.ID)
	})

	t.Run("unknown id reports 404", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodPut, "/talker/999", testToken, body)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Pessoa palestrante não encontrada", errorMessageOf(t, rec))
	})
}

func TestAPI_DeleteTalker(t *testing.T) {
	t.Run("deletes and answers 204 with no body", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodDelete, "/talker/1", testToken, nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())

		after := do(t, mux, http.MethodGet, "/talker/1", "", nil)
		assert.Equal(t, http.StatusNotFound, after.Code)
	})

	t.Run("unknown id reports 404", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodDelete, "/talker/999", testToken, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Pessoa palestrante não encontrada", errorMessageOf(t, rec))
	})

	t.Run("missing token is blocked by the gate", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		rec := do(t, mux, http.MethodDelete, "/talker/1", "", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Token não encontrado", errorMessageOf(t, rec))
	})

	t.Run("ids are not reused after a delete", func(t *testing.T) {
		mux, _ := newTestAPI(t, seedTalkers())

		require.Equal(t, http.StatusNoContent, do(t, mux, http.MethodDelete, "/talker/2", testToken, nil).Code)

		rec := do(t, mux, http.MethodPost, "/talker", testToken, map[string]any{
			"name": "Ana Silva",
			"age":  20,
			"talk": map[string]any{"watchedAt": "01/01/2024", "rate": 3},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var got talker.Talker
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, 3, got.ID)
	})
}
