package commands

import (
	"os"
	"runtime"
)

var emojiSupport = true

// EmojiEnabled can be used to turn emojis off even if they are supported
var EmojiEnabled = true

func init() {
	if os.Getenv("CI") != "" || os.Getenv("NO_EMOJI") != "" {
		emojiSupport = false
		return
	}

	// everything that is not windows usually has emoji support
	if runtime.GOOS != "windows" {
		return
	}

	// raw cmd and powershell set this, windows terminal does not
	if os.Getenv("SESSIONNAME") != "" {
		emojiSupport = false
	}
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
