package clipwire

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

func sampleItems() []Item {
	return []Item{
		{MIMETypes: []string{"text/plain", "TEXT"}, Content: []byte("GOOD")},
		{MIMETypes: []string{"text/html"}, Content: []byte("<p>hi</p>")},
		{MIMETypes: []string{"application/octet-stream"}, Content: nil}, // zero-length content
	}
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.n -= len(p)
	return len(p), nil
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := sampleItems()
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := DecodeBulk(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeBulk: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d items, got %d", len(in), len(got))
	}
	for i := range in {
		if !reflect.DeepEqual(got[i].MIMETypes, in[i].MIMETypes) {
			t.Fatalf("item %d labels mismatch: %#v vs %#v", i, got[i].MIMETypes, in[i].MIMETypes)
		}
		if !bytes.Equal(got[i].Content, in[i].Content) {
			t.Fatalf("item %d content mismatch", i)
		}
	}
}

func TestEncode_GoldenBytes(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []Item{{MIMETypes: []string{"TEXT"}, Content: []byte("GOOD")}})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x20, 0x09, 0x02, 0x14, 0x00,
		'M', 0x00, 0x00, 0x00, 0x04, 'T', 'E', 'X', 'T',
		'C', 0x00, 0x00, 0x00, 0x04, 'G', 'O', 'O', 'D',
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("stream mismatch\nwant: % x\ngot:  % x", want, buf.Bytes())
	}
}

func TestEncode_NoItems(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil {
		t.Fatal(err)
	}
	// A header-only stream decodes to zero items.
	items, err := DecodeBulk(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestEncode_ItemWithoutLabels(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []Item{{Content: []byte("GOOD")}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing may be written on validation failure, got %d bytes", buf.Len())
	}
}

func TestEncode_InvalidUTF8Label(t *testing.T) {
	err := Encode(io.Discard, []Item{{MIMETypes: []string{"\xC3\x28"}, Content: []byte("x")}})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEncode_ContentOverLimit(t *testing.T) {
	err := Encode(io.Discard,
		[]Item{{MIMETypes: []string{"TEXT"}, Content: make([]byte, 32)}},
		WithWriteLimits(Limits{MaxSectionLen: 16}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestEncode_WriterError(t *testing.T) {
	for _, budget := range []int{0, 3, 7, 12, 18} {
		err := Encode(&failingWriter{n: budget}, sampleItems())
		if err == nil {
			t.Fatalf("budget %d: expected error", budget)
		}
	}
}

func TestRoundTrip_DuplicateAndEmptyLabels(t *testing.T) {
	in := []Item{{MIMETypes: []string{"TEXT", "", "TEXT"}, Content: []byte("x")}}
	var buf bytes.Buffer
	if err := Encode(&buf, in); err != nil {
		t.Fatal(err)
	}
	// Bulk mode carries labels verbatim, including empty and duplicate ones.
	got, err := DecodeBulk(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got[0].MIMETypes, in[0].MIMETypes) {
		t.Fatalf("labels mismatch: %#v", got[0].MIMETypes)
	}
}
