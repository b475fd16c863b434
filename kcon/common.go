package kcon

const (
	// ANSI colored text is a string like \033[⟨code⟩mSome_colored_text\033[0m
	ANSI_COL_PRFX = "\033["
	ANSI_COL_SUFX = "m"
)

const DEFAULT_PANIC_BANNER = "\n*** KERNEL PANIC ***\n"

type LevelMap [_LVL_MAX_FOR_CHECKS_ONLY]string

var LevelLabels = &LevelMap{
	"ERROR", //LVL_ERROR
	"WARN",  //LVL_WARN
	"DEBUG", //LVL_DEBUG
	"INFO",  //LVL_INFO
}

// LevelColors covers every level, no fallback branch anywhere reads past it.
var LevelColors = &[_LVL_MAX_FOR_CHECKS_ONLY]Color{
	COL_RED,    //LVL_ERROR
	COL_YELLOW, //LVL_WARN
	COL_CYAN,   //LVL_DEBUG
	COL_GREEN,  //LVL_INFO
}

// concatenated from constants once at init, the render path never rebuilds them
var colorSeqs = [_COL_MAX_FOR_CHECKS_ONLY]string{
	ANSI_COL_PRFX + "31" + ANSI_COL_SUFX, //COL_RED
	ANSI_COL_PRFX + "33" + ANSI_COL_SUFX, //COL_YELLOW
	ANSI_COL_PRFX + "36" + ANSI_COL_SUFX, //COL_CYAN
	ANSI_COL_PRFX + "32" + ANSI_COL_SUFX, //COL_GREEN
	ANSI_COL_PRFX + "2" + ANSI_COL_SUFX,  //COL_DIM
	ANSI_COL_PRFX + "0" + ANSI_COL_SUFX,  //COL_RESET
}

// Seq returns the terminal control sequence of the color. Same color, same
// bytes, every time.
func (c Color) Seq() string {
	return colorSeqs[normColor(c)]
}

// Label returns the display label of the level.
func (lv LogLevel) Label() string {
	return LevelLabels[normLevel(lv)]
}

// Color returns the display color of the level.
func (lv LogLevel) Color() Color {
	return LevelColors[normLevel(lv)]
}

func normLevel(level LogLevel) LogLevel {
	return norm_byte(level, _LVL_MAX_FOR_CHECKS_ONLY, LVL_ERROR)
}

func normColor(col Color) Color {
	return norm_byte(col, _COL_MAX_FOR_CHECKS_ONLY, COL_RESET)
}

func norm_byte[T ~byte](val, overlimit, def T) T {
	if val < overlimit {
		return val
	} else {
		return def
	}
}
