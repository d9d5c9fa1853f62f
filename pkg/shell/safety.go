package shell

import (
	"fmt"
	"strings"
)

// The console only ever hands the shell read-oriented commands, so
// execution is gated by a whitelist plus a dangerous-pattern scan. Both
// checks run server-side of the UI; nothing the view layer does can
// bypass them.

var dangerousPatterns = []string{
	"rm -rf /",
	"rm -r /",
	"sudo rm -rf",
	"> /dev/sd",
	"mkfs",
	"dd if=",
	":(){:|:&};:", // fork bomb
	"chmod -r 777 /",
	"| bash", // pipe to bash (catches curl ... | bash, wget ... | bash)
	"| sh",
	"|bash",
	"|sh",
	"eval $(",
	"$(curl",
	"$(wget",
	"; rm ",
	"&& rm -rf",
	"| rm ",
	"`rm ",
	"sudo su",
	"sudo -i",
	"sudo bash",
}

// allowedPrefixes is the whitelist of runnable commands. Prefixes that
// end in a space require an argument; the rest also match exactly.
var allowedPrefixes = []string{
	"truthgit",
	"ls",
	"pwd",
	"cat ",
	"head ",
	"tail ",
	"grep ",
	"find ",
	"echo ",
	"cd ",
	"git status",
	"git log",
	"git diff",
	"git branch",
	"git show",
	"pip list",
	"pip show",
	"python --version",
	"node --version",
	"npm list",
	"cargo --version",
	"rustc --version",
	"which ",
	"whereis ",
	"file ",
	"wc ",
	"date",
	"whoami",
	"hostname",
	"uname",
	"env",
	"printenv",
}

// shellOperators never appear in allowed commands; chaining and
// substitution are rejected before the whitelist is even consulted.
var shellOperators = []string{";", "&&", "||", "|", "`", "$(", "${", "\n", "\r"}

// Check is the safety verdict for one command.
type Check struct {
	Dangerous bool   `json:"is_dangerous"`
	Warning   string `json:"warning,omitempty"`
}

// IsAllowed reports whether a command matches the whitelist and is free
// of shell operators.
func IsAllowed(command string) bool {
	trimmed := strings.TrimSpace(command)

	for _, op := range shellOperators {
		if strings.Contains(trimmed, op) {
			return false
		}
	}

	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(trimmed, prefix) || trimmed == strings.TrimSpace(prefix) {
			return true
		}
	}
	return false
}

// DangerousPattern returns the first dangerous pattern found in the
// command, or "" when it is clean. Redirecting to /dev/null is exempt.
func DangerousPattern(command string) string {
	lower := strings.ToLower(command)

	if strings.Contains(lower, "> /dev/null") {
		return ""
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return pattern
		}
	}
	return ""
}

// CheckCommand classifies a command without executing it, for UI
// warnings ahead of submission.
func CheckCommand(command string) Check {
	if pattern := DangerousPattern(command); pattern != "" {
		return Check{
			Dangerous: true,
			Warning:   fmt.Sprintf("BLOCKED: command contains dangerous pattern %q", pattern),
		}
	}
	if !IsAllowed(command) {
		return Check{
			Dangerous: true,
			Warning:   fmt.Sprintf("command %q is not in the allowed list; only safe commands are permitted", firstWord(command)),
		}
	}
	return Check{}
}

// Validate enforces the same rules as CheckCommand but as an error, for
// the execution path.
func Validate(command string) error {
	if pattern := DangerousPattern(command); pattern != "" {
		return fmt.Errorf("BLOCKED: command contains dangerous pattern %q, execution denied", pattern)
	}
	if !IsAllowed(command) {
		return fmt.Errorf("BLOCKED: command %q is not in the allowed list, only truthgit and safe read-only commands are permitted", firstWord(command))
	}
	return nil
}

func firstWord(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return command
	}
	return fields[0]
}
