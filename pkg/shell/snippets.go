package shell

import (
	"fmt"
	"path/filepath"
)

// Snippet returns the profile line that sources the installed init
// script for the given shell ("bash", "zsh", or "fish").
func Snippet(shellName, dataDir string) string {
	switch shellName {
	case "fish":
		script := filepath.Join(dataDir, "shell", InitScriptFish)
		return fmt.Sprintf(`if test -f "%s"
    source "%s"
end`, script, script)
	default:
		script := filepath.Join(dataDir, "shell", InitScriptSh)
		return fmt.Sprintf(`[ -f "%s" ] && source "%s"`, script, script)
	}
}
