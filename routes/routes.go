// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"

	"go-storefront/middleware"
)

// RegisterRoutes sets up all the routes for the application. Every GraphQL
// request passes through the auth middleware so resolvers can read the
// caller identity and write session cookies.
func RegisterRoutes(router *mux.Router, schema graphql.Schema, jwtSecret []byte) {
	gql := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	auth := middleware.AuthMiddleware(jwtSecret)
	router.Handle("/graphql", auth(gql)).Methods("GET", "POST")
	router.HandleFunc("/health", healthHandler).Methods("GET")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
