// Package html writes escaped HTML fragments for templ components.
package html

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Builder writes HTML to an io.Writer, keeping the first write error
type Builder struct {
	w   io.Writer
	err error
}

// New creates a Builder writing to w
func New(w io.Writer) *Builder {
	return &Builder{w: w}
}

// Raw writes trusted markup as is
func (b *Builder) Raw(s string) *Builder {
	if b.err == nil {
		_, b.err = io.WriteString(b.w, s)
	}
	return b
}

// Text writes escaped text content
func (b *Builder) Text(s string) *Builder {
	return b.Raw(templ.EscapeString(s))
}

// Attr writes an escaped attribute value; the caller supplies the quotes
func (b *Builder) Attr(s string) *Builder {
	return b.Raw(templ.EscapeString(s))
}

// Int writes an integer
func (b *Builder) Int(v int) *Builder {
	return b.Raw(strconv.Itoa(v))
}

// Checked writes the checked attribute when on is true
func (b *Builder) Checked(on bool) *Builder {
	if on {
		return b.Raw(` checked`)
	}
	return b
}

// Component renders a nested component into the same writer
func (b *Builder) Component(ctx context.Context, c templ.Component) *Builder {
	if b.err == nil {
		b.err = c.Render(ctx, b.w)
	}
	return b
}

// Err returns the first write error
func (b *Builder) Err() error {
	return b.err
}
