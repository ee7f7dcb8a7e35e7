package web

import "github.com/whizdome/tic-tac-toe/internal/board"

const (
	actionNew  = "new"
	actionMove = "move"

	typeUpdate = "update"
	typeError  = "error"

	modeHuman = "human"
	modeBot   = "bot"
)

// ClientMessage is what the page sends over the websocket: start a new
// round ("new", with a mode) or click a cell ("move", with a position).
type ClientMessage struct {
	Action   string `json:"action" validate:"required,oneof=new move"`
	Mode     string `json:"mode,omitempty" validate:"omitempty,oneof=human bot"`
	Position []int  `json:"position,omitempty" validate:"omitempty,len=2,dive,min=0,max=2"`
}

// ServerMessage is pushed after every accepted action with the full game
// state, so the page is a pure renderer.
type ServerMessage struct {
	Type    string        `json:"type"`
	Session string        `json:"session,omitempty"`
	Board   []board.Mark  `json:"board,omitempty"`
	Next    board.Mark    `json:"next,omitempty"`
	Outcome board.Outcome `json:"outcome,omitempty"`
	Winner  board.Mark    `json:"winner,omitempty"`
	BotMove *board.Move   `json:"bot_move,omitempty"`
	Error   string        `json:"error,omitempty"`
}
