package shell

import "strings"

// truthgitCommands are offered first so domain commands outrank the
// generic ones for shared prefixes.
var truthgitCommands = []string{
	"truthgit status",
	"truthgit verify",
	"truthgit safe-verify",
	"truthgit prove",
	"truthgit search",
	"truthgit log",
	"truthgit init",
}

var commonCommands = []string{
	"ls", "cd", "pwd", "cat", "git status", "git log", "git diff",
	"npm run", "python", "pip", "cargo",
}

// Suggest returns known commands matching the typed prefix,
// case-insensitively, truthgit commands first.
func Suggest(prefix string) []string {
	lower := strings.ToLower(prefix)

	var out []string
	for _, set := range [][]string{truthgitCommands, commonCommands} {
		for _, cmd := range set {
			if strings.HasPrefix(strings.ToLower(cmd), lower) {
				out = append(out, cmd)
			}
		}
	}
	return out
}
