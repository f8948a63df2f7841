package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/CircuitStats/CS-Backend/internal/db"
	"github.com/CircuitStats/CS-Backend/internal/middleware"
	"github.com/CircuitStats/CS-Backend/internal/scores"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	scores.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.RateLimitMiddleware(20, 40))
	r.Get("/", RootHandler)

	r.Mount("/scores", scores.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
