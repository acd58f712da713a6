package api

import (
	"log"
	stdhttp "net/http"

	"airportops/internal/auth"
	"airportops/internal/config"
	"airportops/internal/http/handlers"
	"airportops/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	System       handlers.SystemHandler
	Auth         handlers.AuthHandler
	Airlines     handlers.AirlineHandler
	Destinations handlers.DestinationHandler
	Pilots       handlers.PilotHandler
	TravelClass  handlers.TravelClassHandler
	Flights      handlers.FlightHandler
	Passengers   handlers.PassengerHandler
	Tickets      handlers.TicketHandler
	ApiUsers     handlers.ApiUserHandler
}

// NewRouter wires the middleware chain and the full route table. Reads are
// open to any authenticated role, writes and exports need Admin, and the
// api-users group needs SuperAdmin.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	api.GET("/health", h.System.Health)
	api.POST("/auth/token", h.Auth.CreateToken)

	authed := api.Group("", middleware.RequireAuth(cfg.Authentication))
	admin := middleware.RequireRole(auth.RoleAdmin)

	airlines := authed.Group("/airlines")
	airlines.GET("", h.Airlines.List)
	airlines.GET("/search", h.Airlines.Search)
	airlines.GET("/:id", h.Airlines.GetByID)
	airlines.POST("", admin, h.Airlines.Create)
	airlines.PUT("/:id", admin, h.Airlines.Update)
	airlines.DELETE("/:id", admin, h.Airlines.Delete)
	airlines.GET("/export/excel", admin, h.Airlines.ExportExcel)
	airlines.GET("/export/pdf", admin, h.Airlines.ExportPDF)

	destinations := authed.Group("/destinations")
	destinations.GET("", h.Destinations.List)
	destinations.GET("/byFilter", h.Destinations.ByFilter)
	destinations.GET("/:id", h.Destinations.GetByID)
	destinations.POST("", admin, h.Destinations.Create)
	destinations.PUT("/:id", admin, h.Destinations.Update)
	destinations.DELETE("/:id", admin, h.Destinations.Delete)
	destinations.GET("/export/excel", admin, h.Destinations.ExportExcel)
	destinations.GET("/export/pdf", admin, h.Destinations.ExportPDF)

	pilots := authed.Group("/pilots")
	pilots.GET("", h.Pilots.List)
	pilots.GET("/byFilter", h.Pilots.ByFilter)
	pilots.GET("/:id", h.Pilots.GetByID)
	pilots.POST("", admin, h.Pilots.Create)
	pilots.PUT("/:id", admin, h.Pilots.Update)
	pilots.DELETE("/:id", admin, h.Pilots.Delete)
	pilots.GET("/export/excel", admin, h.Pilots.ExportExcel)
	pilots.GET("/export/pdf", admin, h.Pilots.ExportPDF)

	travelClasses := authed.Group("/travel-classes")
	travelClasses.GET("", h.TravelClass.List)
	travelClasses.GET("/byFilter", h.TravelClass.ByFilter)
	travelClasses.GET("/:id", h.TravelClass.GetByID)
	travelClasses.POST("", admin, h.TravelClass.Create)
	travelClasses.PUT("/:id", admin, h.TravelClass.Update)
	travelClasses.DELETE("/:id", admin, h.TravelClass.Delete)
	travelClasses.GET("/export/excel", admin, h.TravelClass.ExportExcel)
	travelClasses.GET("/export/pdf", admin, h.TravelClass.ExportPDF)

	flights := authed.Group("/flights")
	flights.GET("", h.Flights.List)
	flights.GET("/search", h.Flights.Search)
	flights.GET("/byFilter", h.Flights.ByFilter)
	flights.GET("/:id", h.Flights.GetByID)
	flights.POST("", admin, h.Flights.Create)
	flights.PUT("/:id", admin, h.Flights.Update)
	flights.DELETE("/:id", admin, h.Flights.Delete)
	flights.GET("/export/excel", admin, h.Flights.ExportExcel)
	flights.GET("/export/pdf", admin, h.Flights.ExportPDF)

	passengers := authed.Group("/passengers")
	passengers.GET("", h.Passengers.List)
	passengers.GET("/byFilter", h.Passengers.ByFilter)
	passengers.GET("/:id", h.Passengers.GetByID)
	passengers.POST("", admin, h.Passengers.Create)
	passengers.PUT("/:id", admin, h.Passengers.Update)
	passengers.DELETE("/:id", admin, h.Passengers.Delete)
	passengers.GET("/export/excel", admin, h.Passengers.ExportExcel)
	passengers.GET("/export/pdf", admin, h.Passengers.ExportPDF)

	tickets := authed.Group("/tickets")
	tickets.GET("", h.Tickets.List)
	tickets.GET("/search", h.Tickets.Search)
	tickets.GET("/byFilter", h.Tickets.ByFilter)
	tickets.GET("/:id", h.Tickets.GetByID)
	tickets.POST("", admin, h.Tickets.Create)
	tickets.PUT("/:id", admin, h.Tickets.Update)
	tickets.DELETE("/:id", admin, h.Tickets.Delete)
	tickets.GET("/export/excel", admin, h.Tickets.ExportExcel)
	tickets.GET("/export/pdf", admin, h.Tickets.ExportPDF)

	apiUsers := authed.Group("/api-users", middleware.RequireRole(auth.RoleSuperAdmin))
	apiUsers.GET("", h.ApiUsers.List)
	apiUsers.GET("/byFilter", h.ApiUsers.ByFilter)
	apiUsers.GET("/:id", h.ApiUsers.GetByID)
	apiUsers.POST("", h.ApiUsers.Create)
	apiUsers.PUT("/:id", h.ApiUsers.Update)
	apiUsers.DELETE("/:id", h.ApiUsers.Delete)

	return r
}
