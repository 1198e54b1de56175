package fence

import "io"

// Figure decorates a highlighted body with a <figure> wrapper and an
// optional trailing caption.
type Figure struct {
	Body       Stream
	Caption    string
	HasCaption bool
}

// Compose builds a Figure. When hasCaption is false no <figcaption> is emitted.
func Compose(body Stream, caption string, hasCaption bool) *Figure {
	return &Figure{Body: body, Caption: caption, HasCaption: hasCaption}
}

// Render writes the figure in a single pass: opening tag, body, caption, closing tag.
func (f *Figure) Render(w io.Writer) error {
	sw := &stickyWriter{w: w}

	_, _ = io.WriteString(sw, "<figure>")
	if f.Body != nil {
		if err := f.Body(sw); err != nil && sw.err == nil {
			sw.err = err
		}
	}
	if f.HasCaption {
		_, _ = io.WriteString(sw, "<figcaption>")
		_, _ = io.WriteString(sw, f.Caption)
		_, _ = io.WriteString(sw, "</figcaption>")
	}
	_, _ = io.WriteString(sw, "</figure>")

	return sw.err
}

// stickyWriter remembers the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}
