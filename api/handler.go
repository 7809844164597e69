package api

import (
	"net/http"
	"strconv"

	"animforge/config"
	"animforge/render"

	"github.com/gin-gonic/gin"
)

// Handler exposes a live view of an in-progress render session. Frames
// appear as the scheduler completes them, so a client polling the
// progressive order gets an increasingly dense preview of the timeline.
type Handler struct {
	session  *render.Session
	progress *render.Progress
	cfg      *config.Config
}

func NewHandler(sess *render.Session, progress *render.Progress, cfg *config.Config) *Handler {
	return &Handler{
		session:  sess,
		progress: progress,
		cfg:      cfg,
	}
}

// handleProgress reports the completed/total frame counts.
func (h *Handler) handleProgress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"completed": h.progress.Completed(),
		"total":     h.progress.Total(),
	})
}

// handleListFrames lists completed frame indices in timeline order.
func (h *Handler) handleListFrames(c *gin.Context) {
	indices := h.session.Indices()
	if indices == nil {
		indices = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"frames": indices, "ext": h.session.Ext()})
}

// handleGetFrame serves one completed frame artifact.
func (h *Handler) handleGetFrame(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid frame index"})
		return
	}

	path, ok := h.session.Frame(index)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "frame not rendered yet"})
		return
	}
	c.File(path)
}
