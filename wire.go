package clipwire

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

const headerSize = 5 // 4-byte magic + 1-byte version

// readFull reads exactly len(buf) bytes from r, mapping a short read to
// ErrTruncated with the name of the field being read.
func readFull(r io.Reader, buf []byte, field string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: reading %s", ErrTruncated, field)
		}
		return fmt.Errorf("reading %s: %w", field, err)
	}
	return nil
}

// readHeader consumes and validates the fixed stream header.
func readHeader(r io.Reader) error {
	var magic [4]byte
	if err := readFull(r, magic[:], "magic"); err != nil {
		return err
	}
	if magic != Magic {
		return fmt.Errorf("%w: % x", ErrBadMagic, magic[:])
	}
	var ver [1]byte
	if err := readFull(r, ver[:], "version"); err != nil {
		return err
	}
	if ver[0] != Version {
		return fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, ver[0], Version)
	}
	return nil
}

func writeHeader(w io.Writer) error {
	var buf [headerSize]byte
	copy(buf[0:4], Magic[:])
	buf[4] = Version
	_, err := w.Write(buf[:])
	return err
}

// readBlock reads a u32 big-endian length prefix followed by that many bytes.
// The declared length is checked against max before any allocation.
func readBlock(r io.Reader, max uint32, field string) ([]byte, error) {
	var lenBuf [4]byte
	if err := readFull(r, lenBuf[:], field+" length"); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > max {
		return nil, fmt.Errorf("%w: %s declares %d bytes, cap is %d", ErrLimitExceeded, field, n, max)
	}
	buf := make([]byte, n)
	if err := readFull(r, buf, field); err != nil {
		return nil, err
	}
	return buf, nil
}

// readMIMEType reads one length-prefixed block and decodes it as UTF-8.
func readMIMEType(r io.Reader, max uint32) (string, error) {
	buf, err := readBlock(r, max, "mime type")
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: % x", ErrInvalidEncoding, buf)
	}
	return string(buf), nil
}

// readContent reads one length-prefixed block and returns the raw bytes.
func readContent(r io.Reader, max uint32) ([]byte, error) {
	return readBlock(r, max, "content")
}

// writeSection writes one tagged, length-prefixed section.
func writeSection(w io.Writer, tag byte, payload []byte) error {
	var hdr [5]byte
	hdr[0] = tag
	binary.BigEndian.PutUint32(hdr[1:5], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return nil
}
