package settings

import (
	"net/http"

	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsPrefix+"{$}", h.handleGet)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsPrefix+"{$}", h.handlePost)
	mux.HandleFunc(routepath.SettingsPrefix+"{$}", httpx.MethodNotAllowed(http.MethodGet+", "+http.MethodPost))
}
