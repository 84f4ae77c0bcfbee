package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"nodevitals/internal/errors"
	"nodevitals/internal/logger"
	"nodevitals/internal/vitals"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"
)

type healthBody struct {
	Status vitals.HealthState `json:"status" msgpack:"status"`
}

type errorBody struct {
	Error string `json:"error" msgpack:"error"`
	Code  string `json:"code" msgpack:"code"`
}

// negotiate picks the response encoding from the Accept header.
// JSON is the default; collectors ask for msgpack explicitly.
func negotiate(r *http.Request) string {
	if strings.Contains(r.Header.Get("Accept"), "msgpack") {
		return contentTypeMsgpack
	}

	return contentTypeJSON
}

// respond writes v in the negotiated encoding.
func respond(w http.ResponseWriter, encoding string, status int, v any) {
	var (
		data []byte
		err  error
	)

	if encoding == contentTypeMsgpack {
		data, err = msgpack.Marshal(v)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", encoding)
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.Debug().Err(err).Msg("Failed to write response")
	}
}

func respondError(w http.ResponseWriter, encoding string, status int, code errors.ErrorCode, msg string) {
	respond(w, encoding, status, errorBody{Error: msg, Code: string(code)})
}
