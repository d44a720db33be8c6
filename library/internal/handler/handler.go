package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/pkg/jsonx"
	md "github.com/Astemirdum/library-lending/pkg/middleware"
	"github.com/Astemirdum/library-lending/pkg/validate"
	_ "github.com/Astemirdum/library-lending/swagger"
)

type Handler struct {
	bookSvc   BookService
	borrowSvc BorrowService
	authSvc   AuthService
	tokens    md.TokenParser
	log       *zap.Logger
}

func New(bookSvc BookService, borrowSvc BorrowService, authSvc AuthService, tokens md.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc:   bookSvc,
		borrowSvc: borrowSvc,
		authSvc:   authSvc,
		tokens:    tokens,
		log:       log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = jsonx.Serializer{}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/manage/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log.Named("echo"))),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
	)
	authn := md.JwtAuthentication(h.tokens)

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	book := api.Group("/book")
	book.GET("/available", h.ListAvailable)
	book.GET("/archived", h.ListArchived)
	book.GET("/:id", h.GetBook)
	book.POST("/add", h.AddBook)
	book.PATCH("/archive/:id", h.Archive)
	book.PATCH("/unarchive/:id", h.Unarchive)

	borrow := api.Group("/borrow")
	borrow.POST("/:bookId", h.Borrow, authn)
	borrow.POST("/return/:bookId", h.Return, authn)
	borrow.GET("/my/all", h.MyHistory, authn)
	borrow.GET("/my/ongoing", h.MyOngoing, authn)
	borrow.GET("/all/ongoing", h.AllOngoing)
	borrow.GET("/all/history", h.AllHistory)
	borrow.GET("/recommendations", h.Recommend, authn)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps a service error onto its status code.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func paramID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}
