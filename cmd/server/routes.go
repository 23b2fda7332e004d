package main

import (
	"github.com/gin-gonic/gin"
	"eventlink.backend/internal/interfaces/http/handlers"
	"eventlink.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	eventHandler      *handlers.EventHandler
	personaHandler    *handlers.PersonaHandler
	connectionHandler *handlers.ConnectionHandler
	matchingHandler   *handlers.MatchingHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/challenge", d.authHandler.Challenge)
			auth.POST("/verify", d.authHandler.Verify)
			auth.POST("/refresh", d.authHandler.Refresh)
		}

		// Event routes (public read, protected write)
		events := v1.Group("/events")
		{
			events.GET("", d.eventHandler.ListEvents)
			events.GET("/:id", d.eventHandler.GetEvent)
			events.POST("", d.authMiddleware, d.eventHandler.CreateEvent)
			events.POST("/:id/deactivate", d.authMiddleware, d.eventHandler.DeactivateEvent)
		}

		// Persona routes (public lookup, protected self-management)
		personas := v1.Group("/personas")
		{
			personas.GET("/:wallet", d.personaHandler.GetPersona)
			personas.GET("/me", d.authMiddleware, d.personaHandler.GetMyPersona)
			personas.PUT("/me", d.authMiddleware, d.personaHandler.UpsertMyPersona)
		}

		// Connection routes (protected)
		connections := v1.Group("/connections")
		connections.Use(d.authMiddleware)
		{
			connections.POST("/requests", d.connectionHandler.RequestConnection)
			connections.POST("/requests/:id/accept", d.connectionHandler.AcceptConnection)
			connections.POST("/requests/:id/reject", d.connectionHandler.RejectConnection)
			connections.POST("/block", d.connectionHandler.BlockConnection)
			connections.GET("", d.connectionHandler.ListConnections)
		}

		// Match suggestion routes (protected)
		matches := v1.Group("/matches")
		matches.Use(d.authMiddleware)
		{
			matches.GET("/suggestions", d.matchingHandler.SuggestConnections)
		}
	}

	// Prometheus scrape endpoint
	r.GET("/metrics", middleware.MetricsHandler())
}
