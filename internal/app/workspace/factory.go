package workspace

import (
	"innoevent/internal/app/forms"
	"innoevent/internal/app/lists"
	"innoevent/internal/app/portal"
	"innoevent/internal/configs"
)

// PortalFactory builds portals that talk to api and validate and format according to cfg.
func PortalFactory(api portal.API, cfg *configs.AppConfig) Factory {
	format := lists.NewFormatter(cfg.DisplayLocale, cfg.Location)
	opts := portal.Options{
		Rules: forms.Rules{
			MinSeats: cfg.MinTotalSeats,
			Location: cfg.Location,
		},
		Formatter: &format,
	}

	return func(notifier portal.Notifier) *portal.Portal {
		return portal.New(api, notifier, opts)
	}
}
