// Package input decodes raw terminal bytes into key events.
package input

import (
	"bufio"
	"unicode"
	"unicode/utf8"
)

// Key codes, numbered like browser keyCode values so front ends agree on them.
const (
	KeyUnidentified = 0
	KeyBackspace    = 8
	KeyTab          = 9
	KeyEnter        = 13
	KeyEscape       = 27
	KeySpace        = 32
	KeyArrowLeft    = 37
	KeyArrowUp      = 38
	KeyArrowRight   = 39
	KeyArrowDown    = 40
	KeyDelete       = 46
	KeyA            = 65
	KeyZ            = 90
)

// KeyEvent is a single key press.
type KeyEvent struct {
	Code int    // Key code (see constants)
	Key  string // Printed character, empty for non-printing keys
	Ctrl bool   // Control modifier held
}

// IsLetter reports whether the event's code is in the A–Z range.
func (e KeyEvent) IsLetter() bool {
	return e.Code >= KeyA && e.Code <= KeyZ
}

// IsQuit reports whether the event is Ctrl+C or Ctrl+D.
func (e KeyEvent) IsQuit() bool {
	return e.Ctrl && (e.Code == 'C' || e.Code == 'D')
}

// FromRune builds the event for a typed character.
func FromRune(r rune) KeyEvent {
	ev := KeyEvent{Key: string(r)}
	switch {
	case r == ' ':
		ev.Code = KeySpace
	case r < utf8.RuneSelf && unicode.IsLetter(r):
		ev.Code = int(unicode.ToUpper(r))
	case r < utf8.RuneSelf && unicode.IsPrint(r):
		ev.Code = int(r)
	default:
		ev.Code = KeyUnidentified
	}
	return ev
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
// It becomes true once ReadEvents has drained the final byte.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadEvents drains all available bytes from the stream (non-blocking) and
// decodes them into key events.
func ReadEvents(s *Stream) []KeyEvent {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return Decode(buf)
}

// Decode converts a chunk of terminal bytes into key events.
//
// Backspace arrives as DEL (0x7f) or, on terminals configured that way, ^H.
// ^W and ^U (word and line kill) are reported as Backspace with Ctrl.
func Decode(buf []byte) []KeyEvent {
	var events []KeyEvent
	for i := 0; i < len(buf); {
		b := buf[i]

		switch {
		case b == 0x1b:
			ev, n := decodeEscape(buf[i:])
			events = append(events, ev)
			i += n
			continue
		case b == 0x7f || b == 0x08:
			events = append(events, KeyEvent{Code: KeyBackspace})
		case b == 0x17 || b == 0x15:
			events = append(events, KeyEvent{Code: KeyBackspace, Ctrl: true})
		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Code: KeyEnter})
		case b == '\t':
			events = append(events, KeyEvent{Code: KeyTab})
		case b < 0x20:
			// Ctrl+letter
			events = append(events, KeyEvent{Code: int('A' + b - 1), Ctrl: true})
		case b < utf8.RuneSelf:
			events = append(events, FromRune(rune(b)))
		default:
			r, n := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && n <= 1 {
				i++ // Drop invalid or truncated sequences
				continue
			}
			events = append(events, FromRune(r))
			i += n
			continue
		}
		i++
	}
	return events
}

// decodeEscape decodes an ESC-prefixed sequence and returns the number of
// bytes consumed. A lone ESC (or ESC followed by a non-sequence byte) is the
// Escape key.
func decodeEscape(buf []byte) (KeyEvent, int) {
	if len(buf) < 2 || (buf[1] != '[' && buf[1] != 'O') {
		return KeyEvent{Code: KeyEscape}, 1
	}

	// CSI / SS3: parameters then a final byte in 0x40–0x7e
	for j := 2; j < len(buf); j++ {
		c := buf[j]
		if c < 0x40 || c > 0x7e {
			continue
		}
		ev := KeyEvent{Code: KeyUnidentified}
		switch c {
		case 'A':
			ev.Code = KeyArrowUp
		case 'B':
			ev.Code = KeyArrowDown
		case 'C':
			ev.Code = KeyArrowRight
		case 'D':
			ev.Code = KeyArrowLeft
		case '~':
			if string(buf[2:j]) == "3" {
				ev.Code = KeyDelete
			}
		}
		return ev, j + 1
	}

	// Unterminated sequence: swallow the rest
	return KeyEvent{Code: KeyUnidentified}, len(buf)
}
