// Package console owns all terminal interaction: leveled, buffered output
// and the resilient input loop that transparently mixes a recorded macro
// script with live terminal input.
package console

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Behamot007/herocalc/internal/util"
)

// OutputLevel orders message urgency. A message is printed when the
// configured level is at least as verbose as the message's urgency.
type OutputLevel int

const (
	LevelVital OutputLevel = iota
	LevelSolution
	LevelBasic
	LevelDetailed
	LevelDebug
)

var levelNames = map[string]OutputLevel{
	"vital":    LevelVital,
	"solution": LevelSolution,
	"basic":    LevelBasic,
	"detailed": LevelDetailed,
	"debug":    LevelDebug,
}

// ParseOutputLevel maps a level name to its OutputLevel.
func ParseOutputLevel(s string) (OutputLevel, error) {
	level, ok := levelNames[util.ToLower(s)]
	if !ok {
		return LevelBasic, fmt.Errorf("unknown output level %q (expected vital|solution|basic|detailed|debug)", s)
	}
	return level, nil
}

const (
	indentWidth         = 2
	standardCmdWidth    = 80
	finishMessageLength = 20
)

// Console is the single consumer of terminal input and producer of terminal
// output for one session. Strictly sequential; not safe for concurrent use.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger

	level OutputLevel
	buf   bytes.Buffer

	script      []string
	scriptPos   int
	useScript   bool
	showQueries bool

	lastTimed time.Time
	timedOpen bool
}

// New builds a console reading interactive input from in and writing to
// out. Queries are shown until a silent macro script is installed.
func New(in io.Reader, out io.Writer, level OutputLevel, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		log:         log,
		level:       level,
		showQueries: true,
	}
}

// ShouldOutput reports whether messages of the given urgency are printed
// under the configured verbosity.
func (c *Console) ShouldOutput(urgency OutputLevel) bool {
	return c.level >= urgency
}

// InitMacroFile installs the macro script read from path. When the file
// cannot be read the console announces the fallback and stays on manual
// input; a missing script is not an error.
func (c *Console) InitMacroFile(path string, showInput bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(c.out, "Could not find Macro File. Switching to Manual Input.")
		c.log.Warn("macro file unavailable", zap.String("path", path), zap.Error(err))
		return
	}
	c.SetScript(splitLines(string(raw)), showInput)
	c.log.Debug("macro file loaded", zap.String("path", path), zap.Int("lines", len(c.script)))
}

// SetScript installs pre-recorded input lines. showInput controls whether
// consumed lines (and their prompts) are echoed to the output channel.
func (c *Console) SetScript(lines []string, showInput bool) {
	c.script = lines
	c.scriptPos = 0
	c.useScript = true
	c.showQueries = showInput
}

// ShowsPrompts reports whether prompts are visible to the user: always on
// manual input, on scripted input only when echoing.
func (c *Console) ShowsPrompts() bool {
	return !c.useScript || c.showQueries
}

// nextScriptLine consumes the next scripted line. The second result is
// false once the script is exhausted; the switch back to manual input is
// permanent.
func (c *Console) nextScriptLine() (string, bool) {
	if c.scriptPos >= len(c.script) {
		return "", false
	}
	line := c.script[c.scriptPos]
	c.scriptPos++
	return line, true
}

func (c *Console) readManualLine() string {
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		c.log.Warn("manual input read failed", zap.Error(err))
	}
	return strings.TrimRight(line, "\r\n")
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// printBuffer flushes the pending output, printing it only when urgent
// enough for the configured verbosity.
func (c *Console) printBuffer(urgency OutputLevel) {
	if c.ShouldOutput(urgency) {
		io.Copy(c.out, &c.buf)
	}
	c.buf.Reset()
}

func indentOf(indent int) string {
	return strings.Repeat(" ", indent*indentWidth)
}

// OutputMessage prints an indented message gated by urgency.
func (c *Console) OutputMessage(message string, urgency OutputLevel, indent int, linebreak bool) {
	c.buf.WriteString(indentOf(indent) + message)
	if linebreak {
		c.buf.WriteString("\n")
	}
	c.printBuffer(urgency)
}

// TimedOutput starts a message whose line is finished with a duration stamp
// by the next timed message. reset suppresses finishing the previous one.
func (c *Console) TimedOutput(message string, urgency OutputLevel, indent int, reset bool) {
	if c.timedOpen && !reset {
		c.FinishTimedOutput(urgency)
	}
	c.lastTimed = time.Now()
	c.timedOpen = true
	fmt.Fprintf(&c.buf, "%-*s", standardCmdWidth-finishMessageLength, indentOf(indent)+message)
	c.printBuffer(urgency)
}

// FinishTimedOutput closes the open timed message with its duration.
func (c *Console) FinishTimedOutput(urgency OutputLevel) {
	fmt.Fprintf(&c.buf, "Done! (%3.0f seconds)\n", time.Since(c.lastTimed).Seconds())
	c.timedOpen = false
	c.printBuffer(urgency)
}

// SuspendTimedOutputs breaks the open timed line so substeps print on their
// own lines.
func (c *Console) SuspendTimedOutputs(urgency OutputLevel) {
	c.buf.WriteString("\n")
	c.printBuffer(urgency)
}

// ResumeTimedOutputs re-aligns output after suspended substeps.
func (c *Console) ResumeTimedOutputs(urgency OutputLevel) {
	fmt.Fprintf(&c.buf, "%-*s", standardCmdWidth-finishMessageLength, "")
	c.printBuffer(urgency)
}

// HaltExecution waits for enter before returning, so a double-clicked run
// does not close its window on completion.
func (c *Console) HaltExecution() {
	if c.ShouldOutput(LevelBasic) {
		fmt.Fprint(c.out, "Press enter to exit...")
		c.readManualLine()
	}
}
