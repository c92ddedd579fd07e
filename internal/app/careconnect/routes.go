package careconnect

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/admin/addbeneficiary"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/admin/adddonor"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/admin/give"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/admin/removebeneficiary"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/admin/removedonor"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/auth/logout"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/auth/signin"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/auth/signup"
	admindashboard "github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/dashboard/admin"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/dashboard/beneficiary"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/dashboard/donor"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/dashboard/redirect"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/donation/submit"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/health"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/handlers/home"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/middlewarectx"
	"github.com/cyb3erasad/Donor-Management-System/internal/http/page"
	"github.com/cyb3erasad/Donor-Management-System/internal/metrics"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	adminservice "github.com/cyb3erasad/Donor-Management-System/internal/services/admin"
	aggregationservice "github.com/cyb3erasad/Donor-Management-System/internal/services/aggregation"
	authservice "github.com/cyb3erasad/Donor-Management-System/internal/services/auth"
	donationservice "github.com/cyb3erasad/Donor-Management-System/internal/services/donation"
)

// Deps: всё, что нужно маршрутам.
type Deps struct {
	Auth         *authservice.AuthService
	Donation     *donationservice.Service
	Admin        *adminservice.Service
	Aggregation  *aggregationservice.Service
	Renderer     *page.Renderer
	Metrics      *metrics.Metrics
	Checks       map[string]health.Pinger
	SignInLimit  *rate.Limiter
	CookieSecure bool
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.Session(logger, d.Auth),
	)

	// Открытые страницы
	r.Get("/", home.New(logger, d.Renderer).ServeHTTP)
	signinHandler := signin.New(logger, d.Auth, d.Renderer, d.Metrics, d.CookieSecure)
	r.Get("/signin", signinHandler.ServeHTTP)
	r.With(middlewarectx.RateLimitMiddleware(logger, d.SignInLimit)).Post("/signin", signinHandler.ServeHTTP)
	signupHandler := signup.New(logger, d.Auth, d.Renderer)
	r.Get("/signup", signupHandler.ServeHTTP)
	r.Post("/signup", signupHandler.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireSessionPage())
		r.Get("/dashboard-redirect", redirect.New().ServeHTTP)
		r.Get("/logout", logout.New(logger, d.Auth, d.CookieSecure).ServeHTTP)
	})

	r.With(middlewarectx.RequireRolesPage(models.RoleDonor)).
		Get("/donor-dashboard", donor.New(logger, d.Donation, d.Renderer).ServeHTTP)
	r.With(middlewarectx.RequireRolesPage(models.RoleSenior, models.RoleSpecial)).
		Get("/senior-dashboard", beneficiary.New(logger, d.Donation, d.Renderer).ServeHTTP)
	r.With(middlewarectx.RequireAdminPage()).
		Get("/admin-dashboard", admindashboard.New(logger, d.Aggregation, d.Renderer).ServeHTTP)

	r.With(middlewarectx.RequireRolesAPI(logger, models.RoleDonor)).
		Post("/submit-donation", submit.New(logger, d.Donation).ServeHTTP)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middlewarectx.RequireRolesAPI(logger, models.RoleAdmin))
		r.Post("/add-senior", addbeneficiary.New(logger, d.Admin, models.KindSenior).ServeHTTP)
		r.Post("/add-special", addbeneficiary.New(logger, d.Admin, models.KindSpecial).ServeHTTP)
		r.Post("/add-donor", adddonor.New(logger, d.Admin).ServeHTTP)
		r.Delete("/delete-senior/{id}", removebeneficiary.New(logger, d.Admin, models.KindSenior).ServeHTTP)
		r.Delete("/delete-special/{id}", removebeneficiary.New(logger, d.Admin, models.KindSpecial).ServeHTTP)
		r.Delete("/delete-donor/{id}", removedonor.New(logger, d.Admin).ServeHTTP)
		r.Post("/give-donation", give.New(logger, d.Admin).ServeHTTP)
	})

	r.Get("/healthz", health.New(logger, d.Checks).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
