package modules

import (
	"github.com/louisbranch/gmscreen/internal/services/web/modules/api"
	"github.com/louisbranch/gmscreen/internal/services/web/modules/dice"
	"github.com/louisbranch/gmscreen/internal/services/web/modules/public"
	"github.com/louisbranch/gmscreen/internal/services/web/modules/rules"
	"github.com/louisbranch/gmscreen/internal/services/web/modules/settings"
)

// DefaultPageModules returns the HTML page modules.
func DefaultPageModules() []Module {
	return []Module{
		public.New(),
		rules.New(),
		dice.New(),
		settings.New(),
	}
}

// DefaultAPIModules returns the JSON modules.
func DefaultAPIModules() []Module {
	return []Module{
		api.New(),
	}
}
