package wire

import (
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

const indent = "    "

var ErrParse = errors.New("wire: malformed json")

// ParseError reports text that is not well-formed JSON.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return "wire: parse json: " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Parse reads text into a fully loaded document tree. Only syntax is
// checked; numbers keep their literal form until a codec reads them.
func Parse(text string) (Node, error) {
	// sonic's searcher is lazy and stops at the end of the first value, so
	// the whole input is validated before it is loaded
	if !sonic.Valid([]byte(text)) {
		return Node{}, &ParseError{Cause: syntaxError(text)}
	}

	root, err := sonic.GetFromString(text)
	if err != nil {
		return Node{}, &ParseError{Cause: err}
	}
	if err := root.LoadAll(); err != nil {
		return Node{}, &ParseError{Cause: err}
	}

	return root, nil
}

// syntaxError describes why text is not valid JSON.
func syntaxError(text string) error {
	root, err := sonic.GetFromString(text)
	if err != nil {
		return err
	}
	if err := root.LoadAll(); err != nil {
		return err
	}
	return errors.New("invalid json")
}

// Compact renders n without insignificant whitespace.
func Compact(n *Node) ([]byte, error) {
	return n.MarshalJSON()
}

// indenter only adds whitespace: strings keep the exact escaping Compact
// produces.
var indenter = sonic.Config{}.Froze()

// Pretty renders n with one member or element per line, indented by four
// spaces per level.
func Pretty(n *Node) ([]byte, error) {
	return indenter.MarshalIndent(n, "", indent)
}
