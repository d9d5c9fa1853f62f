package commands

import "context"

// Command is one colon-prefixed console command. Handlers return the
// text to print on the console; commands that open a document do so
// through the handler's viewer and return a short confirmation line.
type Command struct {
	Name        string
	Description string
	Usage       string
	Aliases     []string
	Category    string
	Handler     func(ctx context.Context, args []string) (string, error)
}
