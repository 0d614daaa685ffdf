package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arcanaland/flashcards/internal/session"
)

type stepResponse struct {
	SessionID  string         `json:"session_id,omitempty"`
	Status     session.Status `json:"status"`
	Deck       string         `json:"deck,omitempty"`
	Prompt     string         `json:"prompt"`
	Answer     string         `json:"answer"`
	Revealed   bool           `json:"revealed"`
	Reversed   bool           `json:"reversed"`
	Position   int            `json:"position"`
	Total      int            `json:"total"`
	Counter    string         `json:"counter"`
	AnswerSize string         `json:"answer_size,omitempty"`
	CanRestart bool           `json:"can_restart"`
}

func newStepResponse(st session.Step, id uuid.UUID) stepResponse {
	resp := stepResponse{
		Status:     st.Status,
		Deck:       st.Deck,
		Prompt:     st.Prompt,
		Answer:     st.Answer,
		Revealed:   st.Revealed,
		Reversed:   st.Reversed,
		Position:   st.Position,
		Total:      st.Total,
		Counter:    st.Counter(),
		CanRestart: st.CanRestart(),
	}
	if st.Status == session.Active {
		resp.AnswerSize = st.AnswerSize()
	}
	if id != uuid.Nil {
		resp.SessionID = id.String()
	}
	return resp
}

type deckSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subject  string `json:"subject,omitempty"`
	Reversed bool   `json:"reversed"`
	Cards    int    `json:"cards"`
}

type startRequest struct {
	Deck string `json:"deck" binding:"required"`
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listDecks(c *gin.Context) {
	decks := s.decks.List()
	out := make([]deckSummary, 0, len(decks))
	for _, d := range decks {
		out = append(out, deckSummary{
			ID:       d.ID,
			Name:     d.DisplayName(),
			Subject:  d.Subject,
			Reversed: d.Reversed,
			Cards:    d.Len(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "decks": out})
}

func (s *Server) getSession(c *gin.Context) {
	resp := s.current()
	if resp.Status == session.Idle {
		writeError(c, session.ErrNoActiveDeck)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) startSession(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.respond(c, func(e *session.Engine) (session.Step, error) {
		return e.Start(req.Deck)
	}, true)
}

func (s *Server) reveal(c *gin.Context) {
	s.respond(c, (*session.Engine).Reveal, false)
}

func (s *Server) next(c *gin.Context) {
	s.respond(c, (*session.Engine).Advance, false)
}

func (s *Server) restart(c *gin.Context) {
	s.respond(c, (*session.Engine).Restart, true)
}

func (s *Server) respond(c *gin.Context, op func(*session.Engine) (session.Step, error), replaces bool) {
	resp, err := s.do(op, replaces)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	switch {
	case errors.Is(err, session.ErrUnknownDeck):
		status, code = http.StatusNotFound, "unknown_deck"
	case errors.Is(err, session.ErrNoActiveDeck):
		status, code = http.StatusConflict, "no_active_deck"
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
