package http

import (
	"encoding/json"
	"net/http"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// writeJSON encodes body before writing the status line so encoding failures can still
// surface as an error response.
func writeJSON(w http.ResponseWriter, status int, body any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return errResponseEncodeFailed(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(buf, '\n'))
	return nil
}
