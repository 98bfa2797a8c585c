// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"texia/internal/adapters/in/http/handlers"
	"texia/internal/adapters/in/http/middleware"
	query "texia/internal/application/query"
	usecase "texia/internal/application/usecase"
)

// RouterDeps collects the query services and usecases injected from
// main.go. Routes whose dependency is nil are simply not mounted.
type RouterDeps struct {
	AuthUC    *usecase.AuthUsecase
	DefectUC  *usecase.DefectUsecase
	ProfileUC *usecase.ProfileUsecase

	CatalogQ   *query.CatalogQuery
	InventoryQ *query.InventoryQuery
	DashboardQ *query.DashboardQuery
	OrdersQ    *query.OrdersQuery
	ProgressQ  *query.ProgressQuery

	// Optional; when nil the signed-view route is not mounted and the
	// catalog keeps serving public URLs.
	FabricImages handlers.FabricImageIssuer

	FirebaseAuth *middleware.FirebaseAuthClient
}

// NewRouter sets up HTTP routing for all endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	auth := &middleware.OperatorAuthMiddleware{FirebaseAuth: deps.FirebaseAuth}
	authed := func(h http.Handler) http.Handler { return auth.Handler(h) }

	if deps.AuthUC != nil {
		ah := handlers.NewAuthHandler(deps.AuthUC)
		mux.HandleFunc("/auth/register", ah.Register)
		mux.HandleFunc("/auth/login", ah.Login)
		mux.Handle("/auth/logout", authed(http.HandlerFunc(ah.Logout)))
	}

	if deps.CatalogQ != nil {
		mux.Handle("/telas", authed(handlers.NewCatalogHandler(deps.CatalogQ)))
	}

	if deps.FabricImages != nil {
		mux.Handle("/telas/imagen", authed(handlers.NewFabricImageHandler(deps.FabricImages)))
	}

	if deps.InventoryQ != nil {
		mux.Handle("/inventario", authed(handlers.NewInventoryHandler(deps.InventoryQ)))
	}

	if deps.DashboardQ != nil {
		mux.Handle("/dashboard", authed(handlers.NewDashboardHandler(deps.DashboardQ)))
	}

	if deps.OrdersQ != nil {
		mux.Handle("/ordenes", authed(handlers.NewOrdersHandler(deps.OrdersQ)))
	}

	if deps.ProgressQ != nil {
		mux.Handle("/progreso", authed(handlers.NewProgressHandler(deps.ProgressQ)))
	}

	if deps.DefectUC != nil {
		dh := authed(handlers.NewDefectHandler(deps.DefectUC))
		mux.Handle("/defectos", dh)
		mux.Handle("/defectos/", dh)
	}

	if deps.ProfileUC != nil {
		mux.Handle("/perfil", authed(handlers.NewProfileHandler(deps.ProfileUC)))
	}

	// Recover innermost so a panic still gets CORS headers attached.
	return middleware.CORS(middleware.Recover(mux))
}
