package server

import (
	"encoding/json"
	"errors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/kelvinhskim/atomic-chess/internal/obslog"
	"github.com/kelvinhskim/atomic-chess/internal/render"
	"github.com/kelvinhskim/atomic-chess/internal/session"
	"github.com/kelvinhskim/atomic-chess/pkg/atomicdto"
)

func (s *Server) writeGame(ctx *fasthttp.RequestCtx, status int, sess *session.Session) {
	g, err := s.mgr.Game(sess)
	if err != nil {
		obslog.L().Error("game_reconstruct_error", zap.String("game_id", sess.ID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "corrupt game state")
		return
	}
	writeJSON(ctx, status, atomicdto.GameResponse{
		ID:        sess.ID,
		WhiteID:   sess.WhiteID,
		BlackID:   sess.BlackID,
		Moves:     sess.Moves,
		Turn:      sess.Turn,
		State:     sess.State,
		Status:    string(sess.Status),
		Winner:    sess.Winner,
		Board:     render.Rows(g.Board()),
		CreatedAt: sess.CreatedAt,
		UpdatedAt: sess.UpdatedAt,
	})
}

// writeSessionError maps manager sentinels onto HTTP statuses. Rule
// rejections are conflicts, not client syntax errors: the request was
// well-formed, the game just does not allow it.
func writeSessionError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(ctx, fasthttp.StatusNotFound, "game not found")
	case errors.Is(err, session.ErrNotParticipant):
		writeError(ctx, fasthttp.StatusForbidden, "player is not in this game")
	case errors.Is(err, session.ErrNotYourTurn),
		errors.Is(err, session.ErrIllegalMove),
		errors.Is(err, session.ErrFinished),
		errors.Is(err, session.ErrConflict):
		writeError(ctx, fasthttp.StatusConflict, err.Error())
	default:
		obslog.L().Error("request_error", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "internal error")
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, msg string) {
	writeJSON(ctx, status, atomicdto.ErrorResponse{Error: msg})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json; charset=utf-8")
	ctx.SetBody(raw)
}
