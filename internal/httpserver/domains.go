package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "dayplanner/internal/dashboard/delivery/http"
	dashboardUC "dayplanner/internal/dashboard/usecase"
	habitHTTP "dayplanner/internal/habit/delivery/http"
	habitRepository "dayplanner/internal/habit/repository"
	habitPostgre "dayplanner/internal/habit/repository/postgre"
	habitUC "dayplanner/internal/habit/usecase"
	"dayplanner/internal/middleware"
	noteHTTP "dayplanner/internal/note/delivery/http"
	"dayplanner/internal/planning"
	notePostgre "dayplanner/internal/note/repository/postgre"
	noteUC "dayplanner/internal/note/usecase"
	planningHTTP "dayplanner/internal/planning/delivery/http"
	planningRepository "dayplanner/internal/planning/repository"
	planningPostgre "dayplanner/internal/planning/repository/postgre"
	planningUC "dayplanner/internal/planning/usecase"
	todoHTTP "dayplanner/internal/todo/delivery/http"
	todoRepository "dayplanner/internal/todo/repository"
	todoPostgre "dayplanner/internal/todo/repository/postgre"
	todoUC "dayplanner/internal/todo/usecase"
	"dayplanner/pkg/clock"
)

// registerDomainRoutes wires every domain under /api/v1. The pattern per
// domain: repository → usecase → HTTP handler → routes. The planning
// usecase doubles as the todo domain's mirror, and the dashboard reads
// straight from the repositories, so those are built once and shared.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	planningRepo := planningPostgre.New(srv.db, srv.l)
	todoRepo := todoPostgre.New(srv.db, srv.l)
	habitRepo := habitPostgre.New(srv.db, srv.l)

	planningUseCase := srv.setupPlanningDomain(ctx, api, mw, planningRepo)
	srv.setupTodoDomain(ctx, api, mw, todoRepo, planningUseCase)
	srv.setupHabitDomain(ctx, api, mw, habitRepo)
	srv.setupNoteDomain(ctx, api, mw)
	srv.setupDashboard(ctx, api, mw, todoRepo, planningRepo, habitRepo)

	return nil
}

func (srv *HTTPServer) setupPlanningDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repo planningRepository.Repository) planning.Mirror {
	// A typed nil *gcalendar.Client must not reach the interface field.
	var cal planningUC.CalendarClient
	if srv.calendar != nil {
		cal = srv.calendar
	}

	uc := planningUC.New(repo, srv.l, cal, srv.calendarID)
	h := planningHTTP.New(srv.l, uc)
	planningHTTP.RegisterRoutes(api.Group("/planning"), h, mw)

	srv.l.Infof(ctx, "Planning domain registered")
	return uc
}

func (srv *HTTPServer) setupTodoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repo todoRepository.Repository, mirror planning.Mirror) {
	uc := todoUC.New(repo, mirror, srv.l)
	h := todoHTTP.New(srv.l, uc)
	todoHTTP.RegisterRoutes(api.Group("/todos"), h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
}

func (srv *HTTPServer) setupHabitDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repo habitRepository.Repository) {
	uc := habitUC.New(repo, srv.l, clock.Real{})
	h := habitHTTP.New(srv.l, uc)
	habitHTTP.RegisterRoutes(api.Group("/habits"), h, mw)

	srv.l.Infof(ctx, "Habit domain registered")
}

func (srv *HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := notePostgre.New(srv.db, srv.l)
	uc := noteUC.New(repo, srv.l)
	h := noteHTTP.New(srv.l, uc)
	noteHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Note domain registered")
}

func (srv *HTTPServer) setupDashboard(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, todos todoRepository.Repository, planningRepo planningRepository.Repository, habits habitRepository.Repository) {
	uc := dashboardUC.New(todos, planningRepo, habits, clock.Real{}, srv.l)
	h := dashboardHTTP.New(srv.l, uc)
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, mw)

	srv.l.Infof(ctx, "Dashboard registered")
}
