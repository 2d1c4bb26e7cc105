package wicketserver

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/hearthcheck/wicket/pkg/gatekeeping"
	"github.com/hearthcheck/wicket/pkg/util/param"
	"github.com/hearthcheck/wicket/pkg/wicketserver/metrics"
)

// NewGuard is the page-level gate: it evaluates every request path
// and redirects denied navigations to the decision's redirect target
// instead of serving the page.
func NewGuard(evaluator *gatekeeping.Evaluator) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			decision := evaluator.Evaluate(req.URL.Path, rolesForRequest(req), showExperimentalForRequest(req))
			metrics.RecordDecision(decision)
			if !decision.Allowed {
				log.WithFields(log.Fields{
					"path":  param.Cleanse(req.URL.Path),
					"badge": decision.Badge,
				}).Info("navigation denied, redirecting")
				http.Redirect(w, req, decision.RedirectTo, http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
