// Package wire adapts the sonic JSON document model to the small set of
// operations the codecs need: node construction, member lookup, leaf
// extraction, parsing and stringifying.
package wire

import (
	"math"
	"strconv"

	"github.com/bytedance/sonic/ast"
	"github.com/cockroachdb/errors"
)

// Node is one value of a JSON document tree.
type Node = ast.Node

type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf classifies n. Missing or errored nodes are KindInvalid.
func KindOf(n *Node) Kind {
	if n == nil || !n.Exists() {
		return KindInvalid
	}

	switch n.TypeSafe() {
	case ast.V_NULL:
		return KindNull
	case ast.V_TRUE, ast.V_FALSE:
		return KindBool
	case ast.V_NUMBER:
		return KindNumber
	case ast.V_STRING:
		return KindString
	case ast.V_ARRAY:
		return KindArray
	case ast.V_OBJECT:
		return KindObject
	default:
		return KindInvalid
	}
}

func Object() Node {
	return ast.NewObject(nil)
}

func Array(items []Node) Node {
	return ast.NewArray(items)
}

func Null() Node {
	return ast.NewNull()
}

func Bool(v bool) Node {
	return ast.NewBool(v)
}

func String(v string) Node {
	return ast.NewString(v)
}

func Int(v int64) Node {
	return ast.NewNumber(strconv.FormatInt(v, 10))
}

func Uint(v uint64) Node {
	return ast.NewNumber(strconv.FormatUint(v, 10))
}

// Float formats f the way encoding/json does: shortest representation,
// exponent form only for very small or very large magnitudes. f must be
// finite.
func Float(f float64, bits int) Node {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// e-09 -> e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}

	return ast.NewNumber(string(b))
}

// Raw wraps an already encoded JSON value.
func Raw(json string) Node {
	return ast.NewRaw(json)
}

// Set inserts child into obj under key, replacing an existing member.
func Set(obj *Node, key string, child Node) error {
	_, err := obj.Set(key, child)
	return err
}

// Member returns the member of obj named key.
func Member(obj *Node, key string) (*Node, bool) {
	child := obj.Get(key)
	if child == nil || !child.Exists() {
		return nil, false
	}
	return child, true
}

// Members returns every member of obj.
func Members(obj *Node) (map[string]Node, error) {
	return obj.MapUseNode()
}

// Elements returns the items of arr in order.
func Elements(arr *Node) ([]Node, error) {
	return arr.ArrayUseNode()
}

func BoolValue(n *Node) (bool, error) {
	if k := KindOf(n); k != KindBool {
		return false, errors.Newf("expected boolean, got %s", k)
	}
	return n.Bool()
}

func StringValue(n *Node) (string, error) {
	if k := KindOf(n); k != KindString {
		return "", errors.Newf("expected string, got %s", k)
	}
	return n.String()
}

// NumberLiteral returns the textual form of a number node.
func NumberLiteral(n *Node) (string, error) {
	if k := KindOf(n); k != KindNumber {
		return "", errors.Newf("expected number, got %s", k)
	}

	num, err := n.Number()
	if err != nil {
		return "", err
	}
	return num.String(), nil
}
