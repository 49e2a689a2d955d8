package msa

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// A Buffer collects emitted code in program order. It is an append-only
// sink with two channels: 32-bit machine words, and plain-text assembly
// lines. The text channel exists for the mask-reduce branches, whose
// conditional-branch mnemonics reference labels that only a later
// assembler pass can resolve; everything else is binary.
//
// A Buffer has no locking. Concurrent encoders must use distinct buffers.
type Buffer struct {
	units []unit
}

type unit struct {
	word uint32
	line string
	text bool
}

// PutWord appends one machine word.
func (b *Buffer) PutWord(w uint32) {
	b.units = append(b.units, unit{word: w})
}

// PutLine appends one literal assembly line.
func (b *Buffer) PutLine(line string) {
	b.units = append(b.units, unit{line: line, text: true})
}

// Len returns the number of emitted units, counting each machine word and
// each text line as one.
func (b *Buffer) Len() int { return len(b.units) }

// Words returns the machine words in program order, skipping text lines.
func (b *Buffer) Words() []uint32 {
	var ws []uint32
	for _, u := range b.units {
		if !u.text {
			ws = append(ws, u.word)
		}
	}
	return ws
}

// Lines returns the text lines in program order, skipping machine words.
func (b *Buffer) Lines() []string {
	var ls []string
	for _, u := range b.units {
		if u.text {
			ls = append(ls, u.line)
		}
	}
	return ls
}

// Encode writes the buffer as raw little-endian machine code. It fails if
// the buffer holds any text lines, since those cannot be resolved without
// an assembler pass; use WriteListing for mixed content.
func (b *Buffer) Encode(w io.Writer) error {
	for i, u := range b.units {
		if u.text {
			return fmt.Errorf("encode: unit %d is an assembly line (%q), not machine code", i, u.line)
		}
		var word [4]byte
		binary.LittleEndian.PutUint32(word[:], u.word)
		if _, err := w.Write(word[:]); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}

// Bytes is a convenience that encodes the buffer to a byte slice.
func (b *Buffer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteListing renders the buffer as assembler input: machine words become
// ".word" directives and text lines pass through verbatim, preserving
// program order.
func (b *Buffer) WriteListing(w io.Writer) error {
	for _, u := range b.units {
		var err error
		if u.text {
			_, err = fmt.Fprintf(w, "\t%s\n", u.line)
		} else {
			_, err = fmt.Fprintf(w, "\t.word 0x%08X\n", u.word)
		}
		if err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	return nil
}
