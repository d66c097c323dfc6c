package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/daystram/tempo/bench"
	"github.com/daystram/tempo/board"
	"github.com/daystram/tempo/engine"
	"github.com/daystram/tempo/position"
)

const (
	minSearchDepth = 1
	maxSearchDepth = 5
)

var (
	colorPieceWhite = color.New(color.FgHiWhite, color.Bold)
	colorPieceBlack = color.New(color.FgHiBlue, color.Bold)
	colorSquare     = color.New(color.FgHiBlack)
	colorBanner     = color.New(color.FgHiYellow, color.Bold)
)

// Interface is the interactive command loop: it owns the live board and an
// engine, reads one command per line, and prints the board after every
// successful mutation.
type Interface struct {
	board  *board.Board
	engine *engine.Engine

	in  io.Reader
	out io.Writer
}

func NewInterface() *Interface {
	return &Interface{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// NewInterfaceWithIO wires the command loop to the given streams.
func NewInterfaceWithIO(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:  in,
		out: out,
	}
}

func (i *Interface) Run() error {
	if err := i.reset(); err != nil {
		return err
	}
	i.printBoard()

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}

		args := strings.Fields(cmd)
		switch strings.ToLower(args[0]) {
		case "move":
			if len(args) > 1 {
				i.commandMove(args[1])
			} else {
				i.println("ERROR: Invalid move format")
			}
		case "undo":
			i.commandUndo()
		case "new":
			i.commandNew()
		case "ai":
			if len(args) > 1 {
				i.commandAI(args[1])
			} else {
				i.println(fmt.Sprintf("ERROR: AI depth must be %d-%d", minSearchDepth, maxSearchDepth))
			}
		case "fen":
			if len(args) > 1 {
				i.commandFEN(strings.Join(args[1:], " "))
			} else {
				i.println("ERROR: Invalid FEN string")
			}
		case "export":
			i.commandExport()
		case "eval":
			i.commandEval()
		case "perft":
			if len(args) > 1 {
				i.commandPerft(args[1])
			} else {
				i.println("ERROR: Invalid perft depth")
			}
		case "help":
			i.commandHelp()
		case "quit":
			return nil
		default:
			i.println("ERROR: Invalid command")
		}
	}
	return scanner.Err()
}

func (i *Interface) reset() error {
	b, _, err := board.NewBoard()
	if err != nil {
		return err
	}
	i.board = b
	i.engine = engine.NewEngine(&engine.EngineConfig{
		Logger: func(...any) {},
	})
	return nil
}

func (i *Interface) commandMove(notation string) {
	if len(notation) != 4 && len(notation) != 5 {
		i.println("ERROR: Invalid move format")
		return
	}
	from, err := position.NewPosFromNotation(notation[:2])
	if err != nil {
		i.println("ERROR: Invalid move format")
		return
	}
	if _, err := position.NewPosFromNotation(notation[2:4]); err != nil {
		i.println("ERROR: Invalid move format")
		return
	}

	s, p := i.board.PieceAt(from)
	if p == board.PieceUnknown {
		i.println("ERROR: No piece at source square")
		return
	}
	if s != i.board.Turn() {
		i.println("ERROR: Wrong color piece")
		return
	}

	mv, err := i.board.ParseMove(notation)
	if errors.Is(err, board.ErrIllegalMove) && len(notation) == 4 {
		// a bare promotion square defaults to a queen
		mv, err = i.board.ParseMove(notation + "q")
	}
	if err != nil {
		if errors.Is(err, position.ErrInvalidNotation) {
			i.println("ERROR: Invalid move format")
		} else if i.wouldExposeKing(notation) {
			i.println("ERROR: King would be in check")
		} else {
			i.println("ERROR: Illegal move")
		}
		return
	}

	i.board.Apply(mv)
	i.println("OK: " + notation)
	i.printBoard()
	i.printGameEnd()
}

// wouldExposeKing reports whether the notated move is geometrically valid but
// was rejected only because it leaves the mover's own king attacked.
func (i *Interface) wouldExposeKing(notation string) bool {
	from, err := position.NewPosFromNotation(notation[:2])
	if err != nil {
		return false
	}
	to, err := position.NewPosFromNotation(notation[2:4])
	if err != nil {
		return false
	}
	for _, mv := range i.board.GeneratePseudoLegalMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		i.board.Apply(mv)
		exposed := i.board.IsKingChecked(mv.IsTurn)
		_ = i.board.Revert()
		if exposed {
			return true
		}
	}
	return false
}

func (i *Interface) commandUndo() {
	if err := i.board.Revert(); err != nil {
		i.println("ERROR: No moves to undo")
		return
	}
	i.println("Move undone")
	i.printBoard()
}

func (i *Interface) commandNew() {
	if err := i.reset(); err != nil {
		i.println("ERROR: " + err.Error())
		return
	}
	i.println("New game started")
	i.printBoard()
}

func (i *Interface) commandAI(depthStr string) {
	depth, err := strconv.ParseUint(depthStr, 10, 8)
	if err != nil || depth < minSearchDepth || maxSearchDepth < depth {
		i.println(fmt.Sprintf("ERROR: AI depth must be %d-%d", minSearchDepth, maxSearchDepth))
		return
	}

	result, err := i.engine.FindBestMove(i.board, uint8(depth))
	if err != nil {
		i.println("ERROR: No legal moves available")
		return
	}

	i.board.Apply(result.Move)
	i.println(fmt.Sprintf("AI: %s (depth=%d, eval=%d, time=%dms)",
		result.Move.UCI(), depth, result.Score, result.Elapsed.Milliseconds()))
	i.printBoard()
	i.printGameEnd()
}

func (i *Interface) commandFEN(fen string) {
	b, _, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		i.println("ERROR: Invalid FEN string")
		return
	}
	i.board = b
	i.println("Position loaded from FEN")
	i.printBoard()
}

func (i *Interface) commandExport() {
	i.println("FEN: " + i.board.FEN())
}

func (i *Interface) commandEval() {
	i.println(fmt.Sprintf("Position evaluation: %d", engine.Evaluate(i.board)))
}

func (i *Interface) commandPerft(depthStr string) {
	depth, err := strconv.ParseUint(depthStr, 10, 8)
	if err != nil || depth < 1 {
		i.println("ERROR: Invalid perft depth")
		return
	}

	start := time.Now()
	nodes := bench.Count(i.board, int(depth))
	elapsed := time.Since(start)
	i.println(fmt.Sprintf("Perft(%d): %d nodes (%dms)", depth, nodes, elapsed.Milliseconds()))
}

func (i *Interface) commandHelp() {
	i.println("Available commands:")
	i.println("  move <from><to>[promotion] - Make a move (e.g., e2e4, e7e8q)")
	i.println("  undo - Undo the last move")
	i.println(fmt.Sprintf("  ai <depth> - Let AI make a move (depth %d-%d)", minSearchDepth, maxSearchDepth))
	i.println("  new - Start a new game")
	i.println("  fen <string> - Load position from FEN")
	i.println("  export - Export current position as FEN")
	i.println("  eval - Evaluate current position")
	i.println("  perft <depth> - Run performance test")
	i.println("  help - Show this help message")
	i.println("  quit - Exit the program")
}

// printGameEnd prints the terminal banner when the side to move has no reply
// or a draw rule has triggered.
func (i *Interface) printGameEnd() {
	switch state := i.board.State(); state {
	case board.StateCheckmateWhite:
		i.println(colorBanner.Sprint("CHECKMATE: Black wins"))
	case board.StateCheckmateBlack:
		i.println(colorBanner.Sprint("CHECKMATE: White wins"))
	case board.StateStalemate:
		i.println(colorBanner.Sprint("STALEMATE: Draw"))
	case board.StateFiftyMoveViolated:
		i.println(colorBanner.Sprint("DRAW: Fifty-move rule"))
	case board.StateThreefoldRepetition:
		i.println(colorBanner.Sprint("DRAW: Threefold repetition"))
	}
}

func (i *Interface) printBoard() {
	builder := strings.Builder{}
	_, _ = builder.WriteString(colorSquare.Sprint("  a b c d e f g h") + "\n")
	for y := position.Pos(board.Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorSquare.Sprintf("%d ", y+1))
		for x := position.Pos(0); x < board.Width; x++ {
			s, p := i.board.PieceAt(position.NewPos(x, y))
			switch s {
			case board.SideWhite:
				_, _ = builder.WriteString(colorPieceWhite.Sprint(p.SymbolFEN(s)) + " ")
			case board.SideBlack:
				_, _ = builder.WriteString(colorPieceBlack.Sprint(p.SymbolFEN(s)) + " ")
			default:
				_, _ = builder.WriteString(colorSquare.Sprint(".") + " ")
			}
		}
		_, _ = builder.WriteString(colorSquare.Sprintf("%d", y+1) + "\n")
	}
	_, _ = builder.WriteString(colorSquare.Sprint("  a b c d e f g h") + "\n")
	_, _ = builder.WriteString("\n")
	_, _ = builder.WriteString(fmt.Sprintf("%s to move", i.board.Turn()))
	i.println(builder.String())
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}
