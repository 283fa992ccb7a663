package dice

import (
	"net/http"

	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.DicePrefix+"{$}", h.handleIndex)
}
