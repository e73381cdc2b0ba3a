package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/ledtween/stream"
)

// A FrameSource provides the most recently streamed frame.
type FrameSource interface {
	LastFrame() *stream.Frame
}

type frameResponse struct {
	Count  int      `json:"count"`
	Pixels []string `json:"pixels"`
}

type Api struct {
	source FrameSource
	static string
}

func NewApi(source FrameSource, static string) *Api {
	a := new(Api)
	a.source = source
	a.static = static
	return a
}

// Handler serves the last frame on /frame and the client pages on /.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/frame", a.handleFrame)
	if a.static != "" {
		mux.Handle("/", http.FileServer(http.Dir(a.static)))
	}
	return mux
}

func (a *Api) handleFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	f := a.source.LastFrame()
	if f == nil {
		http.Error(w, "no frame streamed yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(frameResponse{Count: f.Len(), Pixels: f.Hex()}); err != nil {
		log.Printf("Failed to write frame: %v", err)
	}
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}
