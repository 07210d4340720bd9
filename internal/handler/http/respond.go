package http

import (
	"net"
	"net/http"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/utils"
	"github.com/MKhiriev/go-store-locator/models"
)

// writeError renders err as {success:false,error} with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeEnvelope(w, r, models.Response{Success: false, Error: messageFromError(err)}, status)
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, response any, status int) {
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// sessionMeta collects the informational request attributes stored with a
// new session.
func sessionMeta(r *http.Request) models.SessionMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}

	return models.SessionMeta{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
	}
}
