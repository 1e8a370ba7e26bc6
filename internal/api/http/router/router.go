package router

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/files-manager/internal/api/http/handler"
	"github.com/dtroode/files-manager/internal/api/http/middleware"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// AuthService is everything the router needs from authentication.
type AuthService interface {
	handler.AuthService
	middleware.SessionResolver
}

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authService    AuthService
	userService    handler.UserService
	fileService    handler.FileService
	appService     handler.AppService
	contextManager model.ContextManager
	corsOrigins    []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService AuthService,
	userService handler.UserService,
	fileService handler.FileService,
	appService handler.AppService,
	contextManager model.ContextManager,
	corsOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		fileService:    fileService,
		appService:     appService,
		contextManager: contextManager,
		corsOrigins:    corsOrigins,
		logger:         logger,
	}
}

func (r *Router) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", middleware.TokenHeader}

	if len(r.corsOrigins) == 0 || slices.Contains(r.corsOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = r.corsOrigins
	}

	return cfg
}

// Register builds the engine with every route.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	e := gin.New()
	e.Use(gin.Recovery(), logging.Handle(), cors.New(r.corsConfig()))
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	r.registerAppRoutes(e)
	r.registerAuthRoutes(e, authenticate)
	r.registerFileRoutes(e, authenticate)

	return e
}

func (r *Router) registerAppRoutes(e *gin.Engine) {
	app := handler.NewApp(r.appService, r.logger)
	e.GET("/status", app.Status)
	e.GET("/stats", app.Stats)
}

func (r *Router) registerAuthRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	auth := handler.NewAuth(r.authService, r.contextManager, r.logger)
	user := handler.NewUser(r.userService, r.logger)

	e.POST("/users", user.Register)
	e.GET("/connect", auth.Connect)

	private := e.Group("/", authenticate.Required())
	private.GET("/disconnect", auth.Disconnect)
	private.GET("/users/me", auth.Me)
}

func (r *Router) registerFileRoutes(e *gin.Engine, authenticate *middleware.Authenticate) {
	file := handler.NewFile(r.fileService, r.contextManager, r.logger)

	files := e.Group("/files")
	files.GET("/:id/data", authenticate.Optional(), file.Data)

	private := files.Group("", authenticate.Required())
	private.POST("", file.Create)
	private.GET("", file.List)
	private.GET("/:id", file.Get)
	private.PUT("/:id/publish", file.Publish)
	private.PUT("/:id/unpublish", file.Unpublish)
}
