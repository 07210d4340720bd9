package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) banner(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "Store Locator API - v%s", serverVersion)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, r, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
