package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	dashboardMiddleware := standardMiddleware.Append(app.requireDashboardSession)

	mux := pat.New()

	// Session
	mux.Post("/session", standardMiddleware.ThenFunc(app.sessionHandler.CreateSession))
	mux.Del("/session", standardMiddleware.ThenFunc(app.sessionHandler.DeleteSession))

	// Properties, public side. The static paths are registered ahead of the
	// :id pattern so pat does not swallow them.
	mux.Get("/properties/facets", standardMiddleware.ThenFunc(app.propertyHandler.GetFacets))
	mux.Get("/properties/upload/progress", dashboardMiddleware.ThenFunc(app.propertyHandler.UploadProgress))
	mux.Get("/properties/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Get("/properties", standardMiddleware.ThenFunc(app.propertyHandler.GetProperties))

	// Properties, dashboard side
	mux.Post("/properties", dashboardMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Put("/properties/:id", dashboardMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/properties/:id", dashboardMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))

	// Dashboard refresh events
	mux.Get("/ws", dashboardMiddleware.ThenFunc(app.RefreshSocketHandler))

	return mux
}
