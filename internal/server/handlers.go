package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"guestwall/internal/shared"
)

type API struct {
	Store Store
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, 2<<20))
}

func (a *API) AddEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, 405, map[string]any{"error": "method not allowed"})
		return
	}
	body, err := readBody(r)
	if err != nil {
		writeJSON(w, 400, map[string]any{"error": "bad body"})
		return
	}

	var req shared.AddEntryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, 400, map[string]any{"error": "bad json"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeJSON(w, 400, map[string]any{"error": "text is required"})
		return
	}

	entry := shared.Entry{
		Text:      text,
		CreatedAt: time.Now().UTC(),
		UserID:    r.Header.Get(userIDHeader),
	}

	id, err := a.Store.Insert(r.Context(), &entry)
	if err != nil {
		log.Printf("add: insert failed: %v", err)
		writeJSON(w, 500, map[string]any{"error": "db error"})
		return
	}
	entry.ID = id

	writeJSON(w, 201, entry)
}

func (a *API) ListEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, 405, map[string]any{"error": "method not allowed"})
		return
	}

	entries, err := a.Store.ListAll(r.Context())
	if err != nil {
		log.Printf("all: list failed: %v", err)
		writeJSON(w, 500, map[string]any{"error": "db error"})
		return
	}

	writeJSON(w, 200, entries)
}

func (a *API) WhoAmI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, 405, map[string]any{"error": "method not allowed"})
		return
	}
	writeJSON(w, 200, shared.WhoAmIResponse{UserID: r.Header.Get(userIDHeader)})
}
