//go:build unit

package codec_test

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/hugolhafner/go-serializer/codec"
	"github.com/hugolhafner/go-serializer/property"
	"github.com/hugolhafner/go-serializer/wire"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type sample struct {
	Integer int
	Double  float64
	Boolean bool
}

func (sample) Properties() property.List {
	return property.List{
		property.Make(func(s *sample) *int { return &s.Integer }, "integer"),
		property.Make(func(s *sample) *float64 { return &s.Double }, "double"),
		property.Make(func(s *sample) *bool { return &s.Boolean }, "boolean"),
	}
}

type inner struct {
	Values []float64
	Label  string
}

func (inner) Properties() property.List {
	return property.List{
		property.Make(func(i *inner) *[]float64 { return &i.Values }, "values"),
		property.Make(func(i *inner) *string { return &i.Label }, "label"),
	}
}

type outer struct {
	Name  string
	Inner inner
}

func (outer) Properties() property.List {
	return property.List{
		property.Make(func(o *outer) *string { return &o.Name }, "name"),
		property.Make(func(o *outer) *inner { return &o.Inner }, "inner"),
	}
}

type color int

const (
	red color = iota
	green
	blue
)

func (c color) Valid() bool {
	return c >= red && c <= blue
}

type weekday uint8

type enums struct {
	Color color
	Day   weekday
}

func (enums) Properties() property.List {
	return property.List{
		property.Make(func(e *enums) *color { return &e.Color }, "color"),
		property.Make(func(e *enums) *weekday { return &e.Day }, "day"),
	}
}

type node struct {
	Value int
	Next  *node
}

func (node) Properties() property.List {
	return property.List{
		property.Make(func(n *node) *int { return &n.Value }, "value"),
		property.Make(func(n *node) **node { return &n.Next }, "next"),
	}
}

type collections struct {
	Tags   map[string]int
	Pair   [2]int8
	Raw    []byte
	Ptr    *string
	Nested [][]string
}

func (collections) Properties() property.List {
	return property.List{
		property.Make(func(c *collections) *map[string]int { return &c.Tags }, "tags"),
		property.Make(func(c *collections) *[2]int8 { return &c.Pair }, "pair"),
		property.Make(func(c *collections) *[]byte { return &c.Raw }, "raw"),
		property.Make(func(c *collections) **string { return &c.Ptr }, "ptr"),
		property.Make(func(c *collections) *[][]string { return &c.Nested }, "nested"),
	}
}

type settings struct {
	Retries int
	Name    string
}

func (s *settings) SetDefaults() {
	s.Retries = 3
	s.Name = "default"
}

func (settings) Properties() property.List {
	return property.List{
		property.Make(func(s *settings) *int { return &s.Retries }, "retries"),
		property.Make(func(s *settings) *string { return &s.Name }, "name"),
	}
}

type event struct {
	At      *timestamppb.Timestamp
	Comment *wrapperspb.StringValue
}

func (event) Properties() property.List {
	return property.List{
		property.Make(func(e *event) **timestamppb.Timestamp { return &e.At }, "at"),
		property.Make(func(e *event) **wrapperspb.StringValue { return &e.Comment }, "comment"),
	}
}

type legacy struct {
	ID   string `json:"id"`
	Seen int    `json:"seen,omitempty"`
}

type audit struct {
	When   time.Time
	Legacy legacy
}

func (audit) Properties() property.List {
	return property.List{
		property.Make(func(a *audit) *time.Time { return &a.When }, "when"),
		property.Make(func(a *audit) *legacy { return &a.Legacy }, "legacy"),
	}
}

type rgb struct {
	R, G, B uint8
}

type palette struct {
	Primary rgb
	Others  []rgb
}

func (palette) Properties() property.List {
	return property.List{
		property.Make(func(p *palette) *rgb { return &p.Primary }, "primary"),
		property.Make(func(p *palette) *[]rgb { return &p.Others }, "others"),
	}
}

var rgbSerializer = codec.Funcs(
	func(c rgb) (wire.Node, error) {
		return wire.String(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
	},
	func(n *wire.Node, _ codec.DecodeOptions) (rgb, error) {
		s, err := wire.StringValue(n)
		if err != nil {
			return rgb{}, err
		}
		b, err := hex.DecodeString(s[min(1, len(s)):])
		if err != nil || len(b) != 3 {
			return rgb{}, errors.Newf("bad color %q", s)
		}
		return rgb{R: b[0], G: b[1], B: b[2]}, nil
	},
)

type duplicated struct {
	A, B int
}

func (duplicated) Properties() property.List {
	return property.List{
		property.Make(func(d *duplicated) *int { return &d.A }, "a"),
		property.Make(func(d *duplicated) *int { return &d.B }, "a"),
	}
}

type holdsDuplicated struct {
	D duplicated
}

func (holdsDuplicated) Properties() property.List {
	return property.List{
		property.Make(func(h *holdsDuplicated) *duplicated { return &h.D }, "d"),
	}
}

type withChannel struct {
	Ch chan int
}

func (withChannel) Properties() property.List {
	return property.List{
		property.Make(func(w *withChannel) *chan int { return &w.Ch }, "ch"),
	}
}

type narrow struct {
	Small int8
	Count uint16
	Ratio float32
}

func (narrow) Properties() property.List {
	return property.List{
		property.Make(func(n *narrow) *int8 { return &n.Small }, "small"),
		property.Make(func(n *narrow) *uint16 { return &n.Count }, "count"),
		property.Make(func(n *narrow) *float32 { return &n.Ratio }, "ratio"),
	}
}

type profile struct {
	Server settings
	List   []settings
}

func (profile) Properties() property.List {
	return property.List{
		property.Make(func(p *profile) *settings { return &p.Server }, "server"),
		property.Make(func(p *profile) *[]settings { return &p.List }, "list"),
	}
}

type tuned struct {
	Server settings
}

func (t *tuned) SetDefaults() {
	t.Server = settings{Retries: 7, Name: "tuned"}
}

func (tuned) Properties() property.List {
	return property.List{
		property.Make(func(t *tuned) *settings { return &t.Server }, "server"),
	}
}
