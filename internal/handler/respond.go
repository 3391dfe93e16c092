package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/eduportal/eduportal-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func success(msg string) model.Response {
	return model.Response{Success: true, Message: msg}
}

func failure(msg string) model.Response {
	return model.Response{Success: false, Message: msg}
}

// isJSON reports whether the request carries a JSON body. The portal's
// forms post urlencoded data while its scripts post JSON; both are
// accepted on the credential endpoints.
func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
