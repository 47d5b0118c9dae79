package request

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes bounds request bodies; the largest legitimate body is a
// round's word list
const maxBodyBytes = 64 << 10

// Decode reads a JSON body into v
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
