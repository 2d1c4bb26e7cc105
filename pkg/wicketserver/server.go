package wicketserver

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/hearthcheck/wicket/pkg/featureflags"
	"github.com/hearthcheck/wicket/pkg/gatekeeping"
	"github.com/hearthcheck/wicket/pkg/goldenpath"
	"github.com/hearthcheck/wicket/pkg/navigation"
)

func NewServer(
	listenAddr string,
	evaluator *gatekeeping.Evaluator,
	routes *navigation.Registry,
	flags *featureflags.Registry,
	goldenPaths *goldenpath.Resolver,
) *Server {
	return &Server{
		listenAddr:  listenAddr,
		evaluator:   evaluator,
		routes:      routes,
		flags:       flags,
		goldenPaths: goldenPaths,
	}
}

type Server struct {
	listenAddr  string
	evaluator   *gatekeeping.Evaluator
	routes      *navigation.Registry
	flags       *featureflags.Registry
	goldenPaths *goldenpath.Resolver
	httpServer  *http.Server
}

// Router builds the full handler tree. Split out from Serve so tests
// can drive it through httptest without binding a port.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/health", s.jsonHealth).Methods(http.MethodGet)
	router.HandleFunc("/api/decision", s.jsonDecision).Methods(http.MethodGet)
	router.HandleFunc("/api/routes", s.jsonRoutes).Methods(http.MethodGet)
	router.HandleFunc("/api/navigation", s.jsonNavigation).Methods(http.MethodGet)
	router.HandleFunc("/api/breadcrumbs", s.jsonBreadcrumbs).Methods(http.MethodGet)
	router.HandleFunc("/api/flags", s.jsonFlags).Methods(http.MethodGet)
	router.HandleFunc("/api/goldenpath/{id}", s.jsonGoldenPath).Methods(http.MethodGet)

	// Plain pages behind the guard, so a denied navigation is
	// redirected the same way the web platform does it.
	pages := router.PathPrefix("/").Subrouter()
	pages.Use(NewGuard(s.evaluator))
	pages.HandleFunc(navigation.GoldenPathStatusRoute, s.goldenPathStatusPage).Methods(http.MethodGet)
	pages.HandleFunc("/", s.homePage).Methods(http.MethodGet)

	return router
}

func (s *Server) Serve() {
	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: s.Router(),
	}

	log.Infof("serving route decisions on %s", s.listenAddr)

	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.WithError(err).Fatal("server exited")
	}
}

func (s *Server) GetHTTPServer() *http.Server {
	return s.httpServer
}
