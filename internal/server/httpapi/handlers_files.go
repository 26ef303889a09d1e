package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/models"
	"github.com/julienschmidt/httprouter"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// bodies spill to temp files.
const maxUploadMemory = 32 << 20

type fileResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	FileSize    int64     `json:"fileSize"`
	ContentType string    `json:"contentType"`
	FolderID    string    `json:"folderId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toFileResponse(f *models.File) fileResponse {
	return fileResponse{
		ID:          f.ID,
		FileName:    f.FileName,
		FileSize:    f.FileSize,
		ContentType: f.ContentType,
		FolderID:    f.FolderID,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// ListFiles returns the caller's files, newest first.
func (s *Server) ListFiles(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, _ := requestClaims(r)

	files, err := s.files.List(r.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(r.Context(), "file list failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": out})
}

// UploadFile accepts a multipart form with a "file" part and an optional
// "folderId" field.
func (s *Server) UploadFile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, _ := requestClaims(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer part.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	folderID := r.FormValue("folderId")

	file, err := s.files.Upload(r.Context(), claims.UserID, header.Filename, contentType,
		header.Size, folderID, part)
	if err != nil {
		s.logger.Error(r.Context(), "file upload failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"file": toFileResponse(file)})
}

// GetFile returns one file's metadata.
func (s *Server) GetFile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, _ := requestClaims(r)

	file, err := s.files.Get(r.Context(), ps.ByName("fileId"), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"file": toFileResponse(file)})
}

// DownloadFile streams the blob back with its stored content type and an
// attachment disposition.
func (s *Server) DownloadFile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, _ := requestClaims(r)

	file, body, err := s.files.Download(r.Context(), ps.ByName("fileId"), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.Header().Set("Content-Length", strconv.FormatInt(file.FileSize, 10))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		// headers already sent, nothing left to do but log
		s.logger.Error(r.Context(), "file stream interrupted", "error", err.Error())
	}
}

// DeleteFile removes the blob and its metadata.
func (s *Server) DeleteFile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, _ := requestClaims(r)

	if err := s.files.Delete(r.Context(), ps.ByName("fileId"), claims.UserID); err != nil {
		s.logger.Error(r.Context(), "file delete failed", "error", err.Error())
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
