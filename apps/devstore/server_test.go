package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lemoonautt/Unigestion-PJ/storage/inmem"
)

func request(t *testing.T, app http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func Test_storeApi(t *testing.T) {
	app := newApp(inmem.NewStore(), true)

	t.Run("unknown resource", func(t *testing.T) {
		rec := request(t, app, http.MethodGet, "/potions", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		rec := request(t, app, http.MethodGet, "/students", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v", rec.Code)
		}
		if got := rec.Body.String(); got != "[]\n" {
			t.Errorf("body = %q; want empty array", got)
		}
	})

	var id string
	t.Run("create assigns id", func(t *testing.T) {
		rec := request(t, app, http.MethodPost, "/students", map[string]interface{}{"firstName": "Ana"})
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatal(err)
		}
		id, _ = doc["id"].(string)
		if id == "" {
			t.Fatal("no id assigned")
		}
	})

	t.Run("patch merges", func(t *testing.T) {
		rec := request(t, app, http.MethodPatch, "/students/"+id, map[string]interface{}{"lastName": "Flores"})
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
			t.Fatal(err)
		}
		if doc["firstName"] != "Ana" || doc["lastName"] != "Flores" {
			t.Errorf("doc = %v; want merged fields", doc)
		}
	})

	t.Run("retrieve", func(t *testing.T) {
		rec := request(t, app, http.MethodGet, "/students/"+id, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %v", rec.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec := request(t, app, http.MethodDelete, "/students/"+id, nil)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNoContent)
		}
		rec = request(t, app, http.MethodGet, "/students/"+id, nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v after delete", rec.Code, http.StatusNotFound)
		}
	})
}
