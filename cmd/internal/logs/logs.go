package logs

import (
	"io"
	"log"

	"github.com/fatih/color"
)

var (
	Info = log.New(color.Output, color.HiBlueString("[INFO] "), log.Lmsgprefix)
	Warn = log.New(color.Output, color.HiYellowString("[WARN] "), log.Lmsgprefix)
	Err  = log.New(color.Output, color.HiRedString("[ERROR] "), log.Lmsgprefix)

	// Debug stays silent unless EnableDebug is called.
	Debug = log.New(io.Discard, color.HiBlackString("[DEBUG] "), log.Lmsgprefix)
)

func EnableDebug() {
	Debug.SetOutput(color.Output)
}
