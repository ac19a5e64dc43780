package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/gestaozabele/hashsvc/internal/hashing"
	"github.com/gestaozabele/hashsvc/internal/metrics"
)

// HashArgon2 calcula hash Argon2 (i, d ou id) e devolve a string PHC.
func (h *Handler) HashArgon2(w http.ResponseWriter, r *http.Request) {
	var req hashing.Argon2Request
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.hasher.HashArgon2(req)
	h.writeHashResult(w, r, "argon2", res, err)
}

// HashScrypt calcula hash scrypt e devolve a string PHC.
func (h *Handler) HashScrypt(w http.ResponseWriter, r *http.Request) {
	var req hashing.ScryptRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.hasher.HashScrypt(req)
	h.writeHashResult(w, r, "scrypt", res, err)
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			WriteError(w, http.StatusUnsupportedMediaType, CodeUnsupportedMedia, "Content-Type deve ser application/json", nil)
			return false
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var (
			maxErr  *http.MaxBytesError
			typeErr *json.UnmarshalTypeError
		)
		switch {
		case errors.As(err, &maxErr):
			WriteError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "corpo da requisição excede o limite", nil)
		case errors.As(err, &typeErr):
			WriteError(w, http.StatusUnprocessableEntity, CodeValidation, typeErr.Field+": tipo ou faixa inválida", map[string]string{"field": typeErr.Field})
		case errors.Is(err, io.EOF):
			WriteError(w, http.StatusBadRequest, CodeValidation, "corpo da requisição vazio", nil)
		default:
			WriteError(w, http.StatusBadRequest, CodeValidation, "JSON inválido", nil)
		}
		return false
	}

	// Só um objeto por corpo.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "corpo da requisição excede o limite", nil)
			return false
		}
		WriteError(w, http.StatusBadRequest, CodeValidation, "conteúdo após o objeto JSON", nil)
		return false
	}
	return true
}

func (h *Handler) writeHashResult(w http.ResponseWriter, r *http.Request, family string, res hashing.Result, err error) {
	reqID := chimiddleware.GetReqID(r.Context())

	var (
		ve *hashing.ValidationError
		ce *hashing.ComputeError
	)
	switch {
	case err == nil:
		metrics.HashRequestsTotal.WithLabelValues(family, "ok").Inc()
		metrics.HashDuration.WithLabelValues(res.Algorithm).Observe(res.Duration.Seconds())
		log.Debug().Str("request_id", reqID).Str("algorithm", res.Algorithm).
			Dur("duration", res.Duration).Msg("hash calculado")
		WriteJSON(w, http.StatusOK, HashResponse{Hash: res.Encoded})

	case errors.As(err, &ve):
		metrics.HashRequestsTotal.WithLabelValues(family, "validation").Inc()
		log.Info().Str("request_id", reqID).Str("family", family).
			Str("field", ve.Field).Msg("parâmetros rejeitados")
		WriteError(w, http.StatusUnprocessableEntity, CodeValidation, ve.Error(), map[string]string{"field": ve.Field})

	case errors.As(err, &ce):
		metrics.HashRequestsTotal.WithLabelValues(family, "compute").Inc()
		log.Error().Str("request_id", reqID).Str("family", family).Err(err).Msg("falha ao calcular hash")
		WriteError(w, http.StatusInternalServerError, CodeInternal, "falha ao calcular hash: "+ce.Error(), nil)

	default:
		metrics.HashRequestsTotal.WithLabelValues(family, "compute").Inc()
		log.Error().Str("request_id", reqID).Str("family", family).Err(err).Msg("erro inesperado")
		WriteError(w, http.StatusInternalServerError, CodeInternal, "erro interno", nil)
	}
}
