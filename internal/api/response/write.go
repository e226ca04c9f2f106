package response

import (
	"encoding/json"
	"net/http"
)

// JSON encodes body with the given status. A nil body writes headers only.
func JSON(w http.ResponseWriter, status int, body any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

// Created writes a 201 pointing at the new resource
func Created(w http.ResponseWriter, location string, body any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, body)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
