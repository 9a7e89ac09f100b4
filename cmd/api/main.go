package main

import (
	"errors"
	"log"
	"net/http"

	"JoinUsMaybe-backend/internal/server"
)

// @title JoinUsMaybe API
// @version 1.0
// @description Recruitment backend for applicant tracking, staged interviews and reviews.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %s", err)
	}
}
