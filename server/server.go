package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"ppdmap/calculator"
	"ppdmap/model"
	"ppdmap/parameter"
)

type Server struct {
	addr     string
	path     string
	upgrader websocket.Upgrader
	catalog  *parameter.Catalog
	defaults model.Params
	maxDim   int
}

// NewServer serves the maps over websocket. Clients may not request grids
// larger than maxDim.
func NewServer(addr, path string, upgrader websocket.Upgrader, catalog *parameter.Catalog, defaults model.Params, maxDim int) *Server {
	return &Server{
		addr:     addr,
		path:     path,
		upgrader: upgrader,
		catalog:  catalog,
		defaults: defaults,
		maxDim:   maxDim,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn, calculator.NewCalculator(s.defaults), s.catalog, s.maxDim)
	defer close(hub.done)
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warn("read failed")
			}
			break
		}
		hub.msg <- msg
	}
	log.WithField("remote", conn.RemoteAddr().String()).Info("client disconnected")
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.path, s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithFields(log.Fields{
		"addr": s.addr,
		"path": s.path,
	}).Info("server started")
	return http.ListenAndServe(s.addr, s.Handler())
}
