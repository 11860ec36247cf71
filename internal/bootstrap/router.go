package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thequickanswers/subsite-backend/config"
	adminhttp "github.com/thequickanswers/subsite-backend/internal/admins/http"
	adminrepo "github.com/thequickanswers/subsite-backend/internal/admins/repository"
	adminservice "github.com/thequickanswers/subsite-backend/internal/admins/service"
	httpapi "github.com/thequickanswers/subsite-backend/internal/api/http"
	"github.com/thequickanswers/subsite-backend/internal/auth"
	"github.com/thequickanswers/subsite-backend/internal/auth/middleware"
	"github.com/thequickanswers/subsite-backend/internal/dnsmap"
	"github.com/thequickanswers/subsite-backend/internal/hosting"
	tmplhttp "github.com/thequickanswers/subsite-backend/internal/templates/http"
	tmplrepo "github.com/thequickanswers/subsite-backend/internal/templates/repository"
	tmplservice "github.com/thequickanswers/subsite-backend/internal/templates/service"
	userhttp "github.com/thequickanswers/subsite-backend/internal/users/http"
	userrepo "github.com/thequickanswers/subsite-backend/internal/users/repository"
	userservice "github.com/thequickanswers/subsite-backend/internal/users/service"
	webhttp "github.com/thequickanswers/subsite-backend/internal/websites/http"
	webrepo "github.com/thequickanswers/subsite-backend/internal/websites/repository"
	webservice "github.com/thequickanswers/subsite-backend/internal/websites/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Config      *config.Config
	DB          *sql.DB
	Tokens      *auth.TokenManager
	Hosting     hosting.Gateway
	Mapper      dnsmap.Mapper
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	adminRepo := adminrepo.New(dep.DB)
	userRepo := userrepo.New(dep.DB)
	templateRepo := tmplrepo.New(dep.DB)
	websiteRepo := webrepo.New(dep.DB)

	adminSvc := adminservice.New(adminRepo, dep.Tokens)
	userSvc := userservice.New(userRepo, dep.Tokens)
	templateSvc := tmplservice.New(templateRepo)
	provisioner := webservice.NewProvisioner(templateRepo, websiteRepo, dep.Hosting, dep.Mapper, webservice.Options{
		HostedDomain:     dep.Config.DNS.HostedDomain,
		AllowReprovision: dep.Config.Provision.AllowReprovision,
	})

	requireUser := middleware.RequireUser(dep.Tokens)
	requireAdmin := middleware.RequireAdmin(dep.Tokens, adminRepo)
	requireSuperAdmin := middleware.RequireSuperAdmin(dep.Tokens, adminRepo)

	userhttp.NewHandler(userSvc).Register(api.Group("/user"))

	adminGroup := api.Group("/admin")
	adminhttp.NewHandler(adminSvc).Register(adminGroup, requireSuperAdmin)

	templatesGroup := adminGroup.Group("/templates")
	templatesGroup.Use(requireAdmin)
	tmplhttp.NewHandler(templateSvc).Register(templatesGroup)

	websiteGroup := api.Group("/website")
	websiteGroup.Use(requireUser)
	webhttp.NewHandler(provisioner, websiteRepo).Register(websiteGroup)

	return r
}
