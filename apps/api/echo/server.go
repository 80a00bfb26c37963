package echoapi

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/Lemoonautt/Unigestion-PJ/core"
	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
	"github.com/Lemoonautt/Unigestion-PJ/core/user"
)

type (
	Options struct {
		DisableReqLogs bool

		AcademicSvc *academic.Service
		UserSvc     *user.Service
		Logger      core.Logger
		Validate    *validator.Validate
		Translator  ut.Translator
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
		ShutdownSignal() <-chan struct{}
	}

	server struct {
		conf     *core.Config
		opts     *Options
		app      *echo.Echo
		shutdown chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(conf *core.Config, opts *Options) Server {
	s := &server{
		conf:     conf,
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan struct{}, 1),
	}
	initAuth(conf)
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.Translator, s.signalShutdown)
	s.app.Debug = s.conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerUserAPI(v1, jwt, s.opts.UserSvc, s.opts.Validate, s.opts.Translator)
	registerAcademicAPI(v1, jwt, s.opts.AcademicSvc, s.opts.Validate)
	registerDashboardAPI(v1, jwt, s.opts.AcademicSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.conf.Server.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ShutdownSignal fires when an unrecoverable error asks for a graceful stop.
func (s *server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- struct{}{}:
	default:
	}
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Unigestion API!")
}
