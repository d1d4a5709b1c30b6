package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"

	"github.com/aksoydem/huntboard-cli/internal/board"
	"github.com/aksoydem/huntboard-cli/internal/interpret"
)

// responseDelay is the cosmetic pause before a chat reply is printed.
// Purely presentational, not part of the state contract.
var responseDelay = 600 * time.Millisecond

// NewChatCommand creates the chat command.
func NewChatCommand() *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Talk to the board in plain text",
		ArgsUsage: "[message]",
		Action: func(c *cli.Context) error {
			engine, err := openEngine()
			if err != nil {
				return err
			}

			// One-shot mode: interpret the argument and exit.
			if c.NArg() > 0 {
				handleChatLine(engine, strings.Join(c.Args().Slice(), " "))
				return nil
			}

			fmt.Printf("💬 Chatting about '%s'. Type 'help' for commands, 'exit' to leave.\n", engine.ActiveTerm().Name)
			reader := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("> ")
				line, err := reader.ReadString('\n')
				if err != nil {
					fmt.Println()
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "exit" || line == "quit" {
					fmt.Println("👋 Good luck out there!")
					return nil
				}
				handleChatLine(engine, line)
			}
		},
	}
}

// handleChatLine runs one line through the interpreter and applies the
// resulting action.
func handleChatLine(engine *board.Engine, line string) {
	action := interpret.Interpret(line, engine)

	switch a := action.(type) {
	case interpret.NoOp:
		return

	case interpret.TextResponse:
		time.Sleep(responseDelay)
		printResponse(a.Body)
		if a.Play {
			fmt.Println("🕹️  (No arcade cabinet in this terminal. Back to the hunt!)")
		}

	case interpret.SwitchTerm:
		engine.SetActiveTerm(a.TermID)
		time.Sleep(responseDelay)
		fmt.Printf("✅ Switched to '%s'.\n", engine.ActiveTerm().Name)

	case interpret.OpenCreateForm:
		fmt.Printf("📝 Let's add %s at %s:\n", a.Position, a.Company)
		if err := runCreateForm(engine, a.Company, a.Position); err != nil {
			fmt.Printf("❌ %v\n", err)
		}
	}
}

// printResponse renders markdown replies nicely, falling back to raw
// text when rendering fails (e.g. no TTY).
func printResponse(body string) {
	out, err := glamour.Render(body, "auto")
	if err != nil {
		fmt.Println(body)
		return
	}
	fmt.Print(out)
}
