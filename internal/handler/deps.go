package handler

import (
	"innoevent/internal/app/workspace"
	"innoevent/internal/configs"
	"innoevent/internal/pkg/limiter"
)

// AppDeps carries what the handlers need.
type AppDeps struct {
	Config     *configs.AppConfig
	Workspaces *workspace.Manager

	// AuthLimiter throttles sign-in and sign-up attempts per client IP.
	AuthLimiter *limiter.IPRateLimiter

	// WorkspaceLimiter throttles workspace creation per client IP.
	WorkspaceLimiter *limiter.IPRateLimiter
}
