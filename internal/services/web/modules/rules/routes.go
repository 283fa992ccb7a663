package rules

import (
	"net/http"

	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.RulesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.RulePattern, h.handleJump)
	mux.HandleFunc(http.MethodGet+" "+routepath.RulesPrefix+"{id}/{rest...}", h.handleNotFound)
}
