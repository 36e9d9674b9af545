package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gophpass/internal/response"
	"github.com/dmitrijs2005/gophpass/internal/rpc"
	"github.com/dmitrijs2005/gophpass/internal/server/validation"
)

const maxBodyBytes = 1 << 16

func (s *HTTPServer) forgot(w http.ResponseWriter, r *http.Request) {
	var req rpc.ForgotPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	writeEnvelope(w, s.controller.Forgot(r.Context(), &req))
}

func (s *HTTPServer) reset(w http.ResponseWriter, r *http.Request) {
	var req rpc.ResetPasswordRequest
	if !decode(w, r, &req) {
		return
	}
	writeEnvelope(w, s.controller.Reset(r.Context(), &req))
}

func (s *HTTPServer) change(w http.ResponseWriter, r *http.Request) {
	var req rpc.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}
	writeEnvelope(w, s.controller.Change(r.Context(), userIDFromContext(r.Context()), &req))
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req rpc.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	writeEnvelope(w, s.controller.Login(r.Context(), &req))
}

// decode reads a JSON body into dst. On failure it answers with a
// validation envelope and returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeEnvelope(w, response.NotSuccess(response.MsgValidationFailed,
			map[string][]string{validation.GeneralKey: {"malformed JSON body"}}))
		return false
	}
	return true
}

func statusFor(env *response.Envelope) int {
	switch env.Code {
	case response.CodeSuccess:
		return http.StatusOK
	case response.CodeError:
		return http.StatusInternalServerError
	}

	switch env.Message {
	case response.MsgValidationFailed:
		return http.StatusUnprocessableEntity
	case response.MsgUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func writeEnvelope(w http.ResponseWriter, env *response.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(env))
	_ = json.NewEncoder(w).Encode(env)
}
