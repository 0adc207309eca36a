package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type Response struct {
	Error string `json:"error" example:"Internal server error"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Error: message})
}

// QueryInt reads an optional integer query parameter.
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
