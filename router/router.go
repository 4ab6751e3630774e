package router

import (
	_ "go-login-api/docs"
	"go-login-api/handler"
	"go-login-api/telemetry"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter(loginHandler *handler.LoginHandler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /health", telemetry.WrapHandler("health", http.HandlerFunc(handler.HealthCheck)))
	mux.Handle("GET /metrics", telemetry.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Any other method on /login is answered 405 by the mux.
	mux.Handle("POST /login", telemetry.WrapHandler("login", handler.ErrorHandlingMiddleware(loginHandler.Login)))
	mux.Handle("GET /login", telemetry.WrapHandler("login_form", handler.ErrorHandlingMiddleware(loginHandler.LoginForm)))

	return mux
}
