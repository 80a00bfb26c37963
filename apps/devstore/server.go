package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/Lemoonautt/Unigestion-PJ/core/academic"
)

// storeApi serves the generic collection-per-resource CRUD API the record
// store client talks to. Documents are schemaless here; validation lives in
// the main API.
type storeApi struct {
	store academic.Store
}

func newApp(store academic.Store, disableReqLogs bool) *echo.Echo {
	api := storeApi{store: store}

	app := echo.New()
	app.HideBanner = true
	app.Pre(middleware.RemoveTrailingSlash())
	if !disableReqLogs {
		app.Use(middleware.Logger())
	}

	g := app.Group("/:resource", api.checkResource)
	g.GET("", api.list)
	g.POST("", api.create)
	g.GET("/:id", api.retrieve)
	g.PATCH("/:id", api.patch)
	g.DELETE("/:id", api.destroy)
	return app
}

// checkResource rejects unknown collections.
func (api *storeApi) checkResource(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		resource := ctx.Param("resource")
		for _, known := range academic.AllResources {
			if resource == known {
				return next(ctx)
			}
		}
		return echo.NewHTTPError(http.StatusNotFound, "unknown resource: "+resource)
	}
}

func (api *storeApi) list(ctx echo.Context) error {
	var docs []map[string]interface{}
	if err := api.store.List(ctx.Request().Context(), ctx.Param("resource"), &docs); err != nil {
		return err
	}
	if docs == nil {
		docs = []map[string]interface{}{}
	}
	return ctx.JSON(http.StatusOK, docs)
}

func (api *storeApi) create(ctx echo.Context) error {
	var in, out map[string]interface{}
	if err := ctx.Bind(&in); err != nil {
		return errors.Wrap(err, "binding document")
	}
	if err := api.store.Create(ctx.Request().Context(), ctx.Param("resource"), in, &out); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, out)
}

func (api *storeApi) retrieve(ctx echo.Context) error {
	var doc map[string]interface{}
	err := api.store.Get(ctx.Request().Context(), ctx.Param("resource"), ctx.Param("id"), &doc)
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, doc)
}

func (api *storeApi) patch(ctx echo.Context) error {
	var in, out map[string]interface{}
	if err := ctx.Bind(&in); err != nil {
		return errors.Wrap(err, "binding document")
	}
	err := api.store.Patch(ctx.Request().Context(), ctx.Param("resource"), ctx.Param("id"), in, &out)
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.JSON(http.StatusOK, out)
}

func (api *storeApi) destroy(ctx echo.Context) error {
	err := api.store.Delete(ctx.Request().Context(), ctx.Param("resource"), ctx.Param("id"))
	if err != nil {
		return notFoundOr(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func notFoundOr(err error) error {
	if errors.Cause(err) == academic.ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
	return err
}
