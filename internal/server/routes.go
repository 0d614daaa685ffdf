package server

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/decks", s.listDecks)
		api.GET("/session", s.getSession)
		api.POST("/session", s.startSession)
		api.POST("/session/reveal", s.reveal)
		api.POST("/session/next", s.next)
		api.POST("/session/restart", s.restart)
	}
}
