package server

import (
	"encoding/json"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/kelvinhskim/atomic-chess/internal/atomic"
	"github.com/kelvinhskim/atomic-chess/internal/obslog"
	"github.com/kelvinhskim/atomic-chess/internal/render"
	"github.com/kelvinhskim/atomic-chess/internal/session"
	"github.com/kelvinhskim/atomic-chess/pkg/atomicdto"
)

// Server exposes the game manager over HTTP.
type Server struct {
	mgr          *session.Manager
	renderer     *render.Renderer
	historyLimit int
	srv          *fasthttp.Server
}

func New(mgr *session.Manager, renderer *render.Renderer, historyLimit int) *Server {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	s := &Server{mgr: mgr, renderer: renderer, historyLimit: historyLimit}
	s.srv = &fasthttp.Server{
		Handler: s.Handle,
		Name:    "atomic-chess",
	}
	return s
}

func (s *Server) ListenAndServe(addr string) error { return s.srv.ListenAndServe(addr) }
func (s *Server) Shutdown() error                  { return s.srv.Shutdown() }

// Handle routes one request. The surface is small enough that a manual
// method+path switch beats pulling in a router.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/healthz" && ctx.IsGet():
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case path == "/v1/games" && ctx.IsPost():
		s.handleCreate(ctx)
	case strings.HasPrefix(path, "/v1/games/"):
		s.routeGame(ctx, strings.TrimPrefix(path, "/v1/games/"))
	case strings.HasPrefix(path, "/v1/players/"):
		s.routePlayer(ctx, strings.TrimPrefix(path, "/v1/players/"))
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) routeGame(ctx *fasthttp.RequestCtx, rest string) {
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1 && ctx.IsGet():
		s.handleGet(ctx, parts[0])
	case len(parts) == 2 && parts[1] == "moves" && ctx.IsPost():
		s.handleMove(ctx, parts[0])
	case len(parts) == 2 && parts[1] == "board.png" && ctx.IsGet():
		s.handleBoardPNG(ctx, parts[0])
	case len(parts) == 2 && parts[1] == "board.txt" && ctx.IsGet():
		s.handleBoardText(ctx, parts[0])
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) routePlayer(ctx *fasthttp.RequestCtx, rest string) {
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 2 && parts[1] == "games" && ctx.IsGet():
		s.handleHistory(ctx, parts[0])
	case len(parts) == 2 && parts[1] == "active" && ctx.IsGet():
		s.handleActive(ctx, parts[0])
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleCreate(ctx *fasthttp.RequestCtx) {
	var req atomicdto.CreateGameRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "malformed request body")
		return
	}
	sess, err := s.mgr.Create(ctx, req.WhiteID, req.BlackID)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	s.writeGame(ctx, fasthttp.StatusCreated, sess)
}

func (s *Server) handleGet(ctx *fasthttp.RequestCtx, id string) {
	sess, err := s.mgr.Get(ctx, id)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	s.writeGame(ctx, fasthttp.StatusOK, sess)
}

func (s *Server) handleMove(ctx *fasthttp.RequestCtx, id string) {
	var req atomicdto.MoveRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "malformed request body")
		return
	}
	sess, err := s.mgr.Play(ctx, id, req.PlayerID, req.From, req.To)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	s.writeGame(ctx, fasthttp.StatusOK, sess)
}

func (s *Server) handleHistory(ctx *fasthttp.RequestCtx, playerID string) {
	recs, err := s.mgr.History(ctx, playerID, s.historyLimit)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	out := make([]atomicdto.ArchivedGameResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, atomicdto.ArchivedGameResponse{
			GameID:    rec.GameID,
			WhiteID:   rec.WhiteID,
			BlackID:   rec.BlackID,
			Winner:    rec.Winner,
			State:     rec.State,
			Moves:     rec.Moves,
			StartedAt: rec.StartedAt,
			EndedAt:   rec.EndedAt,
		})
	}
	writeJSON(ctx, fasthttp.StatusOK, out)
}

func (s *Server) handleActive(ctx *fasthttp.RequestCtx, playerID string) {
	sess, err := s.mgr.ActiveByPlayer(ctx, playerID)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	if sess == nil {
		writeError(ctx, fasthttp.StatusNotFound, "no active game")
		return
	}
	s.writeGame(ctx, fasthttp.StatusOK, sess)
}

func (s *Server) handleBoardPNG(ctx *fasthttp.RequestCtx, id string) {
	g, err := s.loadGame(ctx, id)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	raw, err := s.renderer.PNG(ctx, g.Board())
	if err != nil {
		obslog.L().Error("board_render_error", zap.String("game_id", id), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "render failed")
		return
	}
	ctx.SetContentType("image/png")
	ctx.SetBody(raw)
}

func (s *Server) handleBoardText(ctx *fasthttp.RequestCtx, id string) {
	g, err := s.loadGame(ctx, id)
	if err != nil {
		writeSessionError(ctx, err)
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBodyString(render.Text(g.Board()))
}

func (s *Server) loadGame(ctx *fasthttp.RequestCtx, id string) (*atomic.Game, error) {
	sess, err := s.mgr.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mgr.Game(sess)
}
