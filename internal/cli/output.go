package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerPage:
		o.printPlayerPage(v)
	case Move:
		o.printMove(v)
	case WinnerResult:
		o.printWinnerResult(v)
	case MessageResult:
		fmt.Println(v.Message)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NickName  string `json:"nickName"`
	NumWin    int    `json:"numWin"`
	NumLoss   int    `json:"numLoss"`
	NumDraw   int    `json:"numDraw"`
	Score     int    `json:"score"`
	Active    bool   `json:"active"`
}

// PlayerPage response type
type PlayerPage struct {
	Players       []Player `json:"players"`
	PageNumber    int      `json:"pageNumber"`
	PageSize      int      `json:"pageSize"`
	TotalElements int      `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
}

// Move response type
type Move struct {
	ID      int64        `json:"id"`
	Board   [3][3]string `json:"board"`
	XNext   bool         `json:"xNext"`
	Current bool         `json:"currentGame"`
}

// WinnerResult response type
type WinnerResult struct {
	Winner string `json:"winner"`
}

// MessageResult response type
type MessageResult struct {
	Message string `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s, %s", p.LastName, p.FirstName)
	if p.NickName != "" {
		fmt.Printf(" (%s)", p.NickName)
	}
	fmt.Println()
	fmt.Printf("Record: %dW / %dL / %dD (score %d)\n", p.NumWin, p.NumLoss, p.NumDraw, p.Score)
	fmt.Printf("ID: %d\n", p.ID)
}

func (o *Output) printPlayerPage(page PlayerPage) {
	fmt.Printf("Players (page %d of %d, %d total):\n", page.PageNumber+1, page.TotalPages, page.TotalElements)
	for _, p := range page.Players {
		nick := ""
		if p.NickName != "" {
			nick = fmt.Sprintf(" (%s)", p.NickName)
		}
		fmt.Printf("  %4d  %s, %s%s  %dW/%dL/%dD\n", p.ID, p.LastName, p.FirstName, nick, p.NumWin, p.NumLoss, p.NumDraw)
	}
}

func (o *Output) printMove(m Move) {
	fmt.Printf("Move %d", m.ID)
	if !m.Current {
		fmt.Print(" [archived]")
	}
	fmt.Println()
	o.printBoard(m.Board)
	next := "O"
	if m.XNext {
		next = "X"
	}
	fmt.Printf("Next: %s\n", next)
}

func (o *Output) printBoard(board [3][3]string) {
	for _, row := range board {
		fmt.Print(" ")
		for j, cell := range row {
			if cell == "" {
				cell = "."
			}
			if j > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(cell)
		}
		fmt.Println()
	}
}

func (o *Output) printWinnerResult(w WinnerResult) {
	if w.Winner == "" {
		fmt.Println("No winner")
		return
	}
	fmt.Printf("Winner: %s\n", w.Winner)
}
