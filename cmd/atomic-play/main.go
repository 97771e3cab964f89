// Command atomic-play runs a local two-player game on the console.
// Moves are entered as coordinate pairs, e.g. "d2 d4".
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kelvinhskim/atomic-chess/internal/atomic"
	"github.com/kelvinhskim/atomic-chess/internal/render"
)

func main() {
	g := atomic.NewGame()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Atomic Chess. Enter moves like \"d2 d4\"; \"quit\" to stop.")
	for g.State() == atomic.InProgress {
		fmt.Print(render.Text(g.Board()))
		fmt.Printf("%s to move> ", g.Turn())
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("enter two squares, e.g. d2 d4")
			continue
		}
		if !g.MakeMove(fields[0], fields[1]) {
			fmt.Println("illegal move")
		}
	}

	fmt.Print(render.Text(g.Board()))
	fmt.Println(g.State())
}
