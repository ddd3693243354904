package main

import (
	"log"
	"net/http"

	"visit_tracker/internal/config"
	"visit_tracker/internal/controllers"
	"visit_tracker/internal/geocode"
	"visit_tracker/internal/logger"
	"visit_tracker/internal/middleware"
	"visit_tracker/internal/routes"
	"visit_tracker/internal/services"
	"visit_tracker/internal/storage"

	ginlog "github.com/gin-contrib/logger"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()
	app := config.LoadApp()

	// Collaborators
	geocoder := geocode.NewClient(app.GeocoderBaseURL, app.GeocoderTimeout)
	photos, err := storage.NewFilePhotoStore(app.PhotoDir, app.PhotoBaseURL)
	if err != nil {
		log.Fatalf("photo store init failed: %v", err)
	}

	// Services
	routeSvc := services.NewRouteService(config.DB)
	visitSvc := services.NewVisitService(config.DB, routeSvc, geocoder)
	inspectionSvc := services.NewInspectionService(config.DB, photos)
	markSvc := services.NewMarkService(config.DB)

	// Setup Gin router
	r := routes.SetupRouter(routes.Controllers{
		Routes:      controllers.NewRouteController(routeSvc),
		Visits:      controllers.NewVisitController(visitSvc),
		Inspections: controllers.NewInspectionController(inspectionSvc),
		Marks:       controllers.NewMarkController(markSvc),
	})

	// Request logging middleware
	r.Use(ginlog.SetLogger())

	// Serve stored photos
	r.Static(app.PhotoBaseURL, app.PhotoDir)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", app.ListenAddr)
	log.Fatal(http.ListenAndServe(app.ListenAddr, handler))
}
