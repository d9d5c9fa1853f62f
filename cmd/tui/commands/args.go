package commands

import "strings"

// SplitArgs tokenizes a command line, honoring double and single quotes
// so claims with spaces survive as one argument.
func SplitArgs(input string) []string {
	var args []string
	var current strings.Builder
	var quote rune

	flush := func() {
		if current.Len() > 0 {
			args = append(args, current.String())
			current.Reset()
		}
	}

	for _, ch := range input {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current.WriteRune(ch)
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ' ' || ch == '\t':
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return args
}

// ExtractFlag pulls "--name value" out of args, returning the value and
// the remaining arguments.
func ExtractFlag(args []string, name string) (string, []string) {
	flag := "--" + name
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			rest := make([]string, 0, len(args)-2)
			rest = append(rest, args[:i]...)
			rest = append(rest, args[i+2:]...)
			return args[i+1], rest
		}
	}
	return "", args
}
