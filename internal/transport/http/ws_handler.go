package http

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/ircbar/internal/auth"
	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/core"
	"github.com/vovakirdan/ircbar/internal/proto"
)

// WSHandler upgrades HTTP connections and answers item and info requests.
type WSHandler struct {
	engine    core.Engine
	jwt       *auth.JWTConfig
	rateLimit int
	readLimit int64
	log       *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(eng core.Engine, jwtCfg *auth.JWTConfig, cfg *config.Config, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{
		engine:    eng,
		jwt:       jwtCfg,
		rateLimit: cfg.RateLimit,
		readLimit: cfg.MaxMessageBytes,
		log:       logger,
	}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	if h.jwt.Enabled() {
		token, ok := bearerToken(r)
		if !ok {
			stdhttp.Error(w, "missing authorization", stdhttp.StatusUnauthorized)
			return
		}
		if _, err := auth.ValidateToken(h.jwt, token); err != nil {
			h.log.Debug().Err(err).Msg("ws token rejected")
			stdhttp.Error(w, "invalid token", stdhttp.StatusUnauthorized)
			return
		}
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}

	connID := uuid.NewString()
	logger := h.log.With().Str("conn_id", connID).Logger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	limiter := newRateLimiter(h.rateLimit)
	limiter.startReset(ctx.Done())

	out := make(chan proto.Outbound, 16)
	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, out, limiter, &logger)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, out, &logger)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != -1 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			logger.Warn().Err(err).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, out chan<- proto.Outbound, limiter *rateLimiter, logger *zerolog.Logger) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			logger.Debug().Err(err).Msg("read ws inbound")
			return err
		}

		var reply proto.Outbound
		if !limiter.allow() {
			reply = errorOutbound(inbound.ID, core.ErrCodeRateLimited, "rate limit exceeded")
		} else {
			req, protoErr, err := inboundToRequest(inbound)
			if err != nil {
				logger.Debug().Err(err).Str("type", inbound.Type).Msg("failed to map inbound")
				reply = errorOutbound(inbound.ID, core.ErrCodeBadRequest, "malformed data")
			} else if protoErr != nil {
				reply = proto.Outbound{Type: proto.OutboundTypeError, ID: inbound.ID, Error: protoErr}
			} else {
				reply, err = req.execute(ctx, h.engine)
				if err != nil {
					return err
				}
			}
		}

		select {
		case out <- reply:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, out <-chan proto.Outbound, logger *zerolog.Logger) error {
	for {
		select {
		case msg := <-out:
			if err := wsjson.Write(ctx, conn, msg); err != nil {
				logger.Error().Err(err).Msg("write ws reply")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
