package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/lithammer/shortuuid/v4"
)

// Session owns the scoped temporary directory a render writes its frame
// artifacts into, and tracks which frame indices have completed. Frame
// names are zero-padded from the index, so concurrent writers never
// collide on a path.
type Session struct {
	ID     string
	Dir    string
	ext    string
	frames sync.Map // index int -> path string
}

// NewSession creates the session directory. When raster is true, frames
// are registered as PNGs produced by a raster converter; otherwise the
// SVG artifact is the frame itself.
func NewSession(raster bool) (*Session, error) {
	id := shortuuid.New()
	dir, err := os.MkdirTemp("", "animforge_"+id+"_")
	if err != nil {
		return nil, fmt.Errorf("could not create temp directory: %w", err)
	}

	ext := "svg"
	if raster {
		ext = "png"
	}
	return &Session{ID: id, Dir: dir, ext: ext}, nil
}

// Ext returns the frame artifact extension, without the dot.
func (s *Session) Ext() string {
	return s.ext
}

// VectorPath returns the path the serialized SVG for frame i is written to.
func (s *Session) VectorPath(i int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("render-%05d.svg", i))
}

// FramePath returns the path of the final artifact for frame i.
func (s *Session) FramePath(i int) string {
	return filepath.Join(s.Dir, fmt.Sprintf("render-%05d.%s", i, s.ext))
}

// Template returns the printf-style frame-file template the encoder reads.
func (s *Session) Template() string {
	return filepath.Join(s.Dir, "render-%05d."+s.ext)
}

// Register records frame i as completed on disk.
func (s *Session) Register(i int) {
	s.frames.Store(i, s.FramePath(i))
}

// Frame returns the artifact path for a completed frame.
func (s *Session) Frame(i int) (string, bool) {
	v, ok := s.frames.Load(i)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Indices returns the completed frame indices in ascending order.
func (s *Session) Indices() []int {
	var out []int
	s.frames.Range(func(key, _ interface{}) bool {
		out = append(out, key.(int))
		return true
	})
	sort.Ints(out)
	return out
}

// Compact renumbers the completed frames into a gapless sequence starting
// at zero, preserving timeline order. A partially complete run leaves
// holes in the index space that the encoder's %05d input template cannot
// skip; after Compact the template covers exactly the frames that exist.
// Returns the number of frames in the compacted sequence.
func (s *Session) Compact() (int, error) {
	indices := s.Indices()
	for k, idx := range indices {
		if idx == k {
			continue
		}
		// Ascending order guarantees slot k has already been vacated.
		if err := os.Rename(s.FramePath(idx), s.FramePath(k)); err != nil {
			return 0, fmt.Errorf("compacting frame %d: %w", idx, err)
		}
		s.frames.Delete(idx)
		s.frames.Store(k, s.FramePath(k))
	}
	return len(indices), nil
}

// Cleanup removes the session directory and everything in it.
func (s *Session) Cleanup() error {
	return os.RemoveAll(s.Dir)
}
