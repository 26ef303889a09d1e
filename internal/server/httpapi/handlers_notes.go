package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/services"
	"github.com/julienschmidt/httprouter"
)

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteResponse(n *models.Note) noteResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ListNotes returns the caller's notes, newest first.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, _ := requestClaims(r)

	notes, err := s.notes.List(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "note list failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNoteResponse(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": out})
}

type createNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, _ := requestClaims(r)

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	note, err := s.notes.Create(r.Context(), claims.UserID, req.Title, req.Content, req.Tags)
	if err != nil {
		s.logger.Error(r.Context(), "note create failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"note": toNoteResponse(note)})
}

func (s *Server) GetNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, _ := requestClaims(r)

	note, err := s.notes.Get(r.Context(), ps.ByName("noteId"), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"note": toNoteResponse(note)})
}

type updateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// UpdateNote applies a partial update; absent fields keep their value.
func (s *Server) UpdateNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, _ := requestClaims(r)

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := s.notes.Update(r.Context(), ps.ByName("noteId"), claims.UserID, services.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"note": toNoteResponse(note)})
}

func (s *Server) DeleteNote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, _ := requestClaims(r)

	if err := s.notes.Delete(r.Context(), ps.ByName("noteId"), claims.UserID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
