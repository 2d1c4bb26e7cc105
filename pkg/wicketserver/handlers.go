package wicketserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"k8s.io/apimachinery/pkg/util/sets"

	gatekeepingv1 "github.com/hearthcheck/wicket/pkg/apis/gatekeeping/v1"
	"github.com/hearthcheck/wicket/pkg/util/param"
	"github.com/hearthcheck/wicket/pkg/wicketserver/metrics"
)

// rolesForRequest reads the caller's roles from the X-Forwarded-Groups
// header set by the auth proxy, falling back to the roles query param
// for direct callers.
func rolesForRequest(req *http.Request) sets.String {
	raw := req.Header.Get("X-Forwarded-Groups")
	if raw == "" {
		raw = param.SafeRead(req, "roles")
	}
	roles := sets.String{}
	for _, role := range strings.Split(raw, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roles.Insert(role)
		}
	}
	return roles
}

func showExperimentalForRequest(req *http.Request) bool {
	value := param.SafeRead(req, "showExperimental")
	return value == "true" || value == "1"
}

func (s *Server) jsonHealth(w http.ResponseWriter, req *http.Request) {
	RespondWithJSON(http.StatusOK, w, map[string]interface{}{
		"status":      "OK",
		"environment": s.evaluator.Environment(),
	})
}

func (s *Server) jsonDecision(w http.ResponseWriter, req *http.Request) {
	path := param.SafeRead(req, "path")
	if path == "" {
		failureResponse(w, http.StatusBadRequest, "path query parameter is required")
		return
	}
	decision := s.evaluator.Evaluate(path, rolesForRequest(req), showExperimentalForRequest(req))
	metrics.RecordDecision(decision)
	RespondWithJSON(http.StatusOK, w, decision)
}

func (s *Server) jsonRoutes(w http.ResponseWriter, req *http.Request) {
	decisions := s.evaluator.AllDecisions(rolesForRequest(req), showExperimentalForRequest(req))
	RespondWithJSON(http.StatusOK, w, decisions)
}

func (s *Server) jsonNavigation(w http.ResponseWriter, req *http.Request) {
	nav := s.evaluator.NavigationRoutes(rolesForRequest(req), showExperimentalForRequest(req))
	RespondWithJSON(http.StatusOK, w, nav)
}

func (s *Server) jsonBreadcrumbs(w http.ResponseWriter, req *http.Request) {
	path := param.SafeRead(req, "path")
	if path == "" {
		failureResponse(w, http.StatusBadRequest, "path query parameter is required")
		return
	}
	RespondWithJSON(http.StatusOK, w, s.routes.Breadcrumbs(path))
}

func (s *Server) jsonFlags(w http.ResponseWriter, req *http.Request) {
	RespondWithJSON(http.StatusOK, w, s.flags.EnabledFlags(s.evaluator.Environment()))
}

func (s *Server) jsonGoldenPath(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	RespondWithJSON(http.StatusOK, w, s.goldenPaths.StatusFor(id))
}

// goldenPathStatusPage is the redirect target for not-ready routes: a
// plain summary of every declared golden path.
func (s *Server) goldenPathStatusPage(w http.ResponseWriter, req *http.Request) {
	statuses := []gatekeepingv1.GoldenPathStatus{}
	for _, id := range s.evaluator.DeclaredGoldenPaths() {
		statuses = append(statuses, s.goldenPaths.StatusFor(id))
	}
	RespondWithJSON(http.StatusOK, w, statuses)
}

// homePage is the redirect target for denied navigations.
func (s *Server) homePage(w http.ResponseWriter, req *http.Request) {
	RespondWithJSON(http.StatusOK, w, s.evaluator.NavigationRoutes(rolesForRequest(req), showExperimentalForRequest(req)))
}
