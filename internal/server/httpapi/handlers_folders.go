package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

type folderResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ParentFolderID string    `json:"parentFolderId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toFolderResponse(f *models.Folder) folderResponse {
	return folderResponse{
		ID:             f.ID,
		Name:           f.Name,
		ParentFolderID: f.ParentFolderID,
		CreatedAt:      f.CreatedAt,
	}
}

func (s *Server) ListFolders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, _ := requestClaims(r)

	folders, err := s.folders.List(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "folder list failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	out := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		out = append(out, toFolderResponse(f))
	}
	writeJSON(w, http.StatusOK, map[string]any{"folders": out})
}

type createFolderRequest struct {
	Name           string `json:"name"`
	ParentFolderID string `json:"parentFolderId"`
}

func (s *Server) CreateFolder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, _ := requestClaims(r)

	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	folder, err := s.folders.Create(r.Context(), claims.UserID, req.Name, req.ParentFolderID)
	if err != nil {
		s.logger.Error(r.Context(), "folder create failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"folder": toFolderResponse(folder)})
}
