package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"innoevent/internal/app/portal"
	"innoevent/internal/app/workspace"
	"innoevent/internal/pkg/auth/jwt"
	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/logx"
	"innoevent/internal/pkg/req"
	"innoevent/internal/pkg/resp"
)

type contextKey string

const workspaceContextKey contextKey = "workspace"

// WorkspaceMiddleware resolves the caller's workspace from the signed cookie. A browser without
// a valid cookie, or whose workspace has expired, gets a new workspace and a fresh cookie, subject
// to the per-IP workspace creation limit.
func WorkspaceMiddleware(deps *AppDeps) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var workspaceID string
			if payload, err := jwt.ReadCookie(r, deps.Config.SessionSecret); err == nil {
				workspaceID = payload.WorkspaceID
			}

			var ws *workspace.Workspace
			if workspaceID != "" {
				ws = deps.Workspaces.Get(workspaceID)
			}

			if ws == nil {
				if deps.WorkspaceLimiter != nil && !deps.WorkspaceLimiter.Allow(r) {
					logx.Warn("Workspace creation rejected: rate limit exceeded", "path", r.URL.Path)
					resp.RespondError(w, r, errs.NewError(errs.ErrRateLimitExceeded))
					return
				}

				ws = deps.Workspaces.Create()
				if err := jwt.WriteCookie(w, ws.ID, deps.Config.SessionSecret, !deps.Config.IsDevelopment()); err != nil {
					logx.Error(err, "Failed to issue workspace cookie")
					resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
					return
				}
			}

			ctx := context.WithValue(r.Context(), workspaceContextKey, ws)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// workspaceFrom returns the workspace WorkspaceMiddleware attached to r.
func workspaceFrom(r *http.Request) *workspace.Workspace {
	ws, _ := r.Context().Value(workspaceContextKey).(*workspace.Workspace)
	return ws
}

// run executes op in the caller's workspace and answers with the resulting view and notices.
func run(w http.ResponseWriter, r *http.Request, op func(p *portal.Portal) error) {
	ws := workspaceFrom(r)
	if ws == nil {
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	result, err := ws.Do(op)
	if err != nil {
		resp.RespondErrorData(w, r, errs.From(err), result)
		return
	}
	resp.RespondSuccess(w, r, result)
}

// bind decodes a JSON body into dst, or a URL-encoded form through fill.
func bind(w http.ResponseWriter, r *http.Request, dst any, fill func(get func(key string) string)) *errs.CustomError {
	if req.IsForm(r) {
		return req.BindForm(w, r, fill)
	}
	return req.BindJSON(w, r, dst)
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, *errs.CustomError) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}
	return id, nil
}

// confirmed answers the confirmation prompt from the confirm query parameter.
func confirmed(r *http.Request) portal.Confirm {
	answer, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	return func(string) bool { return answer }
}
