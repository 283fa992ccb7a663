package api

import (
	"net/http"

	"github.com/louisbranch/gmscreen/internal/services/web/platform/httpx"
	"github.com/louisbranch/gmscreen/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIRules, h.handleSearch)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIRulePattern, h.handleRule)
	mux.HandleFunc(http.MethodGet+" "+routepath.APICategories, h.handleCategories)
	mux.HandleFunc(http.MethodPost+" "+routepath.APIDiceRoll, h.handleDiceRoll)
	mux.Handle(routepath.APIDiceRoll, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
}
