package web

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/whizdome/tic-tac-toe/internal/apperror"
	"github.com/whizdome/tic-tac-toe/internal/board"
	"github.com/whizdome/tic-tac-toe/internal/usecase"
)

//go:embed index.html
var indexPage []byte

func (that *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

// handleWebSocket upgrades the connection and runs one session per
// connection until the client goes away.
func (that *Server) handleWebSocket(c *gin.Context) {
	log := that.logger.With("method", "handleWebSocket")

	conn, err := that.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	that.serveSession(log, conn)
}

func (that *Server) serveSession(log *slog.Logger, conn *websocket.Conn) {
	var sess *usecase.Session

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("failed to read message", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err = json.Unmarshal(data, &msg); err != nil {
			that.sendError(log, conn, "malformed message")
			continue
		}

		if err = that.validate.Struct(&msg); err != nil {
			that.sendError(log, conn, "invalid message: "+err.Error())
			continue
		}

		switch msg.Action {
		case actionNew:
			sess = that.newSession(log, msg)
			that.sendUpdate(log, conn, sess, nil)

		case actionMove:
			if sess == nil {
				that.sendError(log, conn, "no active game")
				continue
			}
			that.handleMove(log, conn, sess, msg)
		}
	}
}

func (that *Server) newSession(log *slog.Logger, msg ClientMessage) *usecase.Session {
	botMark := board.Empty
	if msg.Mode == modeBot {
		botMark = that.botMark
	}

	sess := usecase.NewSession(uuid.NewString(), botMark)
	log.Info("session started", "session", sess.ID, "mode", msg.Mode)

	return sess
}

// handleMove applies the human click and, when the bot is the side to
// move afterwards, its reply in the same update.
func (that *Server) handleMove(log *slog.Logger, conn *websocket.Conn, sess *usecase.Session, msg ClientMessage) {
	if len(msg.Position) != 2 {
		that.sendError(log, conn, "position is required")
		return
	}

	mv := board.Move{Row: msg.Position[0], Col: msg.Position[1]}

	if err := sess.MakeTurn(sess.Turn(), mv); err != nil {
		switch {
		case errors.Is(err, apperror.ErrInvalidMove),
			errors.Is(err, apperror.ErrGameFinished):
			that.sendError(log, conn, err.Error())
		default:
			log.Error("failed to make turn", "session", sess.ID, "error", err)
			that.sendError(log, conn, "failed to make turn")
		}
		return
	}

	var botMove *board.Move
	if sess.IsBotTurn() {
		mv, err := sess.BotTurn()
		if err != nil {
			log.Error("bot turn failed", "session", sess.ID, "error", err)
			that.sendError(log, conn, "bot turn failed")
			return
		}
		botMove = &mv
	}

	if sess.Outcome() != board.InProgress {
		log.Info("session finished", "session", sess.ID, "outcome", sess.Outcome())
	}

	that.sendUpdate(log, conn, sess, botMove)
}

func (that *Server) sendUpdate(log *slog.Logger, conn *websocket.Conn, sess *usecase.Session, botMove *board.Move) {
	cells := sess.Cells()

	resp := ServerMessage{
		Type:    typeUpdate,
		Session: sess.ID,
		Board:   cells[:],
		Next:    sess.Turn(),
		Outcome: sess.Outcome(),
		Winner:  sess.Outcome().Winner(),
		BotMove: botMove,
	}

	that.send(log, conn, resp)
}

func (that *Server) sendError(log *slog.Logger, conn *websocket.Conn, message string) {
	that.send(log, conn, ServerMessage{Type: typeError, Error: message})
}

func (that *Server) send(log *slog.Logger, conn *websocket.Conn, resp ServerMessage) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error("failed to marshal response", "error", err)
		return
	}

	if err = conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Error("failed to write message", "error", err)
	}
}
