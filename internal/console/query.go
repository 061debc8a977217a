package console

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Behamot007/herocalc/internal/util"
)

// Reserved answer tokens. Comparison happens after lowercasing, so input
// case never matters.
const (
	PositiveAnswer = "y"
	NegativeAnswer = "n"

	helpToken = "help"
)

// QueryType selects which raw strings terminate a resilient query.
type QueryType int

const (
	// Question accepts only the positive or negative answer token.
	Question QueryType = iota
	// Integer accepts any first token that parses as an integer.
	Integer
	// Raw accepts anything and returns the whole comment-stripped line.
	Raw
	// RawFirst accepts anything and returns the first token.
	RawFirst
)

// GetResistantInput loops until the input satisfies the query type and
// returns the accepted token (or line, for Raw). Lines come from the macro
// script while it lasts, then permanently from manual input. Comments are
// stripped and everything is lowercased before validation; "help" prints
// the help text and never terminates the query. Invalid input re-prompts
// silently.
func (c *Console) GetResistantInput(query, help string, queryType QueryType) string {
	for {
		var line string
		if c.useScript {
			line, c.useScript = c.nextScriptLine()
			if !c.useScript {
				c.log.Debug("macro script exhausted, switching to manual input")
			}
		}
		if !c.useScript || c.showQueries {
			fmt.Fprint(c.out, query)
		}
		if !c.useScript {
			line = c.readManualLine()
		}

		line = util.Split(util.ToLower(line), util.CommentDelimiter)[0]
		firstToken := util.Split(line, util.TokenSeparator)[0]
		if c.useScript && c.showQueries {
			fmt.Fprintln(c.out, line)
		}

		if firstToken == helpToken {
			fmt.Fprint(c.out, help)
			continue
		}
		switch queryType {
		case Question:
			if firstToken == PositiveAnswer || firstToken == NegativeAnswer {
				return firstToken
			}
		case Integer:
			if _, err := strconv.Atoi(firstToken); err == nil {
				return firstToken
			}
		case Raw:
			return line
		case RawFirst:
			return firstToken
		}
		c.log.Debug("rejected input", zap.String("token", firstToken))
	}
}

// AskYesNoQuestion asks a y/n question. When the configured verbosity
// suppresses the question entirely, defaultAnswer is used instead of
// interacting.
func (c *Console) AskYesNoQuestion(question, help string, urgency OutputLevel, defaultAnswer string) bool {
	if !c.ShouldOutput(urgency) {
		return defaultAnswer == PositiveAnswer
	}
	answer := c.GetResistantInput(question+" ("+PositiveAnswer+"/"+NegativeAnswer+"): ", help, Question)
	switch answer {
	case PositiveAnswer:
		return true
	case NegativeAnswer:
		return false
	}
	// Question-mode validation only ever returns the two answer tokens.
	panic(fmt.Sprintf("question validation returned %q", answer))
}
