package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CMSGate proxies /api/cms/* to the CMS GraphQL endpoint. In production the
// route is closed.
type CMSGate struct {
	production bool
	proxy      *httputil.ReverseProxy
}

// NewCMSGate creates the gate. An empty endpoint leaves the route
// unconfigured; token, if set, is forwarded as X-API-KEY.
func NewCMSGate(production bool, endpoint, token string) (*CMSGate, error) {
	g := &CMSGate{production: production}
	if production || endpoint == "" {
		return g, nil
	}
	target, err := url.Parse(endpoint)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("api: invalid cms endpoint %q", endpoint)
	}
	g.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			rest := strings.Trim(chi.URLParam(pr.In, "*"), "/")
			pr.SetURL(target)
			// SetURL joins the incoming path onto the target; only the
			// wildcard rest belongs there.
			pr.Out.URL.Path = target.Path
			if rest != "" {
				pr.Out.URL.Path = strings.TrimSuffix(target.Path, "/") + "/" + rest
			}
			pr.Out.URL.RawPath = ""
			pr.Out.Header.Del("Authorization")
			if token != "" {
				pr.Out.Header.Set("X-API-KEY", token)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, _ *http.Request, err error) {
			slog.Warn("cms proxy failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorBody("CMS is unavailable"))
		},
	}
	return g, nil
}

// ServeHTTP handles ANY /api/cms/*.
//
//	@Summary		CMS GraphQL passthrough for the editing UI
//	@Tags			cms
//	@Success		200
//	@Failure		403	{object}	errResponse
//	@Failure		503	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/cms/{path} [post]
func (g *CMSGate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if g.production {
		writeJSON(w, http.StatusForbidden, errorBody("CMS is disabled on production"))
		return
	}
	if g.proxy == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody("CMS is not configured"))
		return
	}
	g.proxy.ServeHTTP(w, r)
}
