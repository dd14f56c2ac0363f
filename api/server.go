package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/helpnet-api/logmodule"
	"github.com/bitmark-inc/helpnet-api/ratelimit"
	"github.com/bitmark-inc/helpnet-api/store"
	"github.com/bitmark-inc/helpnet-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Indexer builds the database indexes
type Indexer interface {
	IndexAll() error
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store   store.AutonomyCore
	indexer Indexer

	// JWT public key of the identity provider
	jwtPublicKey *rsa.PublicKey

	// throttles message sending per sender
	messageLimiter ratelimit.Limiter
}

// NewServer new instance of server
func NewServer(
	core store.AutonomyCore,
	indexer Indexer,
	jwtKey *rsa.PublicKey,
	messageLimiter ratelimit.Limiter) *Server {
	return &Server{
		store:          core,
		indexer:        indexer,
		jwtPublicKey:   jwtKey,
		messageLimiter: messageLimiter,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", logmodule.RequestIDHeader},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
		accountRoute.GET("/top-helpers", s.topHelpers)
		accountRoute.GET("/search", s.searchAccounts)
		accountRoute.GET("/:accountID", s.accountProfile)
	}

	meRoute := accountRoute.Group("/me")
	meRoute.Use(s.recognizeAccountMiddleware())
	{
		meRoute.GET("", s.accountDetail)
		meRoute.PATCH("", s.accountUpdateProfile)
		meRoute.GET("/requests", s.accountHelps)
		meRoute.GET("/stats", s.accountStats)
		meRoute.GET("/notifications", s.accountNotifications)
	}

	helpRoute := apiRoute.Group("/helps")
	{
		helpRoute.POST("", s.askForHelp)
		helpRoute.GET("", s.listHelps)
		helpRoute.GET("/nearby", s.nearbyHelps)
		helpRoute.GET("/:helpID", s.helpDetail)
		helpRoute.PATCH("/:helpID", s.updateHelp)
		helpRoute.DELETE("/:helpID", s.cancelHelp)
		helpRoute.POST("/:helpID/accept", s.acceptHelp)
		helpRoute.POST("/:helpID/complete", s.completeHelp)
		helpRoute.POST("/:helpID/rate", s.rateHelp)
		helpRoute.GET("/:helpID/chat", s.helpChat)
	}

	chatRoute := apiRoute.Group("/chats")
	{
		chatRoute.GET("", s.listChats)
		chatRoute.GET("/unread-count", s.unreadCount)
		chatRoute.POST("", s.startChat)
		chatRoute.GET("/:chatID", s.chatDetail)
		chatRoute.DELETE("/:chatID", s.deactivateChat)
		chatRoute.POST("/:chatID/messages", s.messageRateLimit(), s.sendMessage)
		chatRoute.POST("/:chatID/read", s.markChatRead)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/index", s.buildIndexes)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	sentry.CaptureException(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

// abortWithStoreError responds with the status and error object matching an
// error of the core. Unexpected errors are reported.
func abortWithStoreError(c *gin.Context, err error) {
	status, resp := storeErrorResponse(err)
	if status >= http.StatusInternalServerError {
		shouldInterupt(err, c)
		return
	}
	abortWithEncoding(c, status, resp, err)
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "HelpNet 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

// buildIndexes creates the mongo indexes on demand
func (s *Server) buildIndexes(c *gin.Context) {
	if err := s.indexer.IndexAll(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	// only the standard messages are translated
	if msg, ok := errorMessageMap[obj.Code]; ok && msg == obj.Message {
		obj.Message = utils.Localize(c.GetHeader("Accept-Language"), errorMessageID(obj.Code), obj.Message)
	}

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
