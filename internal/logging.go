package internal

import (
	"io"
	"log"
	"os"
)

// Logger is used by the library packages. It discards output until InitLogging is called.
var Logger = log.New(io.Discard, "", log.LstdFlags|log.Lmicroseconds)

// InitLogging routes library and standard logger output to w (stdout when nil)
func InitLogging(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	Logger.SetOutput(w)
	Logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
