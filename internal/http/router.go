package api

import (
	"time"

	"tourism/internal/auth"
	intconfig "tourism/internal/config"
	intdb "tourism/internal/db"
	h "tourism/internal/http/handlers"
	"tourism/internal/http/middleware"
	"tourism/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Deps is everything the router needs from main.
type Deps struct {
	Env    intconfig.Env
	Logger *logrus.Logger
	Store  *intdb.Store
	Tokens *auth.TokenManager
	Now    func() time.Time
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	tokens := d.Tokens
	if tokens == nil {
		tokens = auth.NewTokenManager(d.Env.JWTSecret, d.Env.JWTExpirationHours)
	}

	hs := &h.Handlers{
		Auth:     services.AuthService{Store: d.Store, Now: d.Now},
		Catalog:  services.CatalogService{Store: d.Store},
		Bookings: services.BookingService{Store: d.Store, Now: d.Now},
		Feedback: services.FeedbackService{Store: d.Store, Now: d.Now},
		Admin:    services.AdminService{Store: d.Store},
		Tokens:   tokens,
		Store:    d.Store,
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(d.Env.CORSAllowedOrigins),
		middleware.Sessions(middleware.SessionConfig{
			Secret:     d.Env.SessionSecret,
			CookieName: d.Env.SessionCookieName,
			Secure:     d.Env.SessionCookieSecure,
		}),
		middleware.Identity(tokens),
		middleware.ErrorPage(log),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(h.NotFound)

	limiter := middleware.NewClientLimiter(d.Env.LoginRatePerMinute, d.Env.LoginRateBurst)
	limited := middleware.RateLimit(limiter, log)

	// Public
	r.GET("/", hs.Home)
	r.GET("/about_us", hs.AboutUs)
	r.GET("/contact", hs.ContactForm)
	r.POST("/contact", hs.SubmitContact)
	r.GET("/register", hs.RegisterForm)
	r.POST("/register", limited, hs.Register)
	r.GET("/login", hs.LoginForm)
	r.POST("/login", limited, hs.Login)
	r.GET("/logout", hs.Logout)
	r.GET("/admin_register", hs.AdminRegisterForm)
	r.POST("/admin_register", limited, hs.AdminRegister)
	r.GET("/admin_login", hs.AdminLoginForm)
	r.POST("/admin_login", limited, hs.AdminLogin)

	// Users
	user := r.Group("", middleware.RequireUser())
	user.GET("/main_dashboard", hs.MainDashboard)
	user.GET("/explore", hs.Explore)
	user.GET("/book/:package_id", hs.Book)
	user.GET("/my_bookings", hs.MyBookings)
	user.GET("/my_bookings/:id/receipt", hs.Receipt)
	user.GET("/profile", hs.Profile)
	user.POST("/update_profile", hs.UpdateProfile)
	user.GET("/change_password", hs.ChangePasswordForm)
	user.POST("/change_password", hs.ChangePassword)

	// Admin
	admin := r.Group("", middleware.RequireAdmin())
	admin.GET("/admin_dashboard", hs.AdminDashboard)
	admin.GET("/admin/users", hs.AdminUsers)
	admin.GET("/admin/feedback", hs.AdminFeedback)
	admin.GET("/admin/bookings", hs.AdminBookings)
	admin.GET("/admin/packages", hs.AdminPackages)
	admin.GET("/admin/package/add", hs.AddPackageForm)
	admin.POST("/admin/package/add", hs.AddPackage)
	admin.GET("/admin/package/edit/:id", hs.EditPackageForm)
	admin.POST("/admin/package/edit/:id", hs.EditPackage)
	admin.POST("/admin/package/delete/:id", hs.DeletePackage)
	admin.GET("/admin/profile", hs.AdminProfile)

	// legacy paths
	admin.GET("/feedback_reports", h.Redirect("/admin/feedback"))
	admin.GET("/admin_payments", h.Redirect("/admin/packages"))
	admin.GET("/edit_admin_profile", h.Redirect("/admin/profile"))

	// API
	api := r.Group("/api")
	api.POST("/auth/token", limited, hs.IssueToken)

	r.GET("/health", hs.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
