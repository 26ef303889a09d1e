package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/cloudkeeper/internal/server/auth"
	"github.com/dmitrijs2005/cloudkeeper/internal/server/gate"
	"github.com/julienschmidt/httprouter"
)

// Handler builds the full HTTP surface: the JSON API plus the page gate
// wrapped around everything outside /api/.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.POST("/api/auth/signup", s.Signup)
	router.POST("/api/auth/login", s.Login)
	router.POST("/api/auth/logout", s.Logout)
	router.GET("/api/auth/me", s.requireAuth(s.Me))

	router.GET("/api/files", s.requireAuth(s.ListFiles))
	router.POST("/api/files/upload", s.requireAuth(s.UploadFile))
	router.GET("/api/files/:fileId", s.requireAuth(s.GetFile))
	router.GET("/api/files/:fileId/download", s.requireAuth(s.DownloadFile))
	router.DELETE("/api/files/:fileId", s.requireAuth(s.DeleteFile))

	router.GET("/api/notes", s.requireAuth(s.ListNotes))
	router.POST("/api/notes", s.requireAuth(s.CreateNote))
	router.GET("/api/notes/:noteId", s.requireAuth(s.GetNote))
	router.PATCH("/api/notes/:noteId", s.requireAuth(s.UpdateNote))
	router.DELETE("/api/notes/:noteId", s.requireAuth(s.DeleteNote))

	router.GET("/api/folders", s.requireAuth(s.ListFolders))
	router.POST("/api/folders", s.requireAuth(s.CreateFolder))

	router.GET("/api/health", s.Health)

	verify := func(token string) bool {
		_, ok := auth.VerifyToken(token, s.jwtSecret)
		return ok
	}
	return gate.Middleware(verify, router)
}
