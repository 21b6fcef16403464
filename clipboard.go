package colortable

// Clipboard receives serialized markup. *termenv.Output satisfies it.
type Clipboard interface {
	Copy(string)
}

// Copy hands out.HTML to c. The write is fire-and-forget: nothing is
// returned, awaited or retried, and a failing clipboard is c's concern.
func Copy(c Clipboard, out Output) {
	if c == nil {
		return
	}
	c.Copy(out.HTML)
}
