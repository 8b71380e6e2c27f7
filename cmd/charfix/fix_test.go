package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/charfix/norm"
)

type failWriter struct{}

func (failWriter) Write(d []byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestWriteDocSep(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDocSep(&buf); err != nil {
		t.Fatalf("writeDocSep: %v", err)
	}
	if buf.String() != "\n---\n" {
		t.Errorf("separator: %q", buf.String())
	}
	if err := writeDocSep(failWriter{}); err == nil {
		t.Error("expected error from failing writer")
	}
}

func TestFixReaderMultiDoc(t *testing.T) {
	cfg := &FixConfig{MainConfig: &MainConfig{}}
	in := strings.NewReader("a: hello\n---\nb: world\n")
	var buf bytes.Buffer
	if err := fixReader(cfg, norm.ToInternal, &buf, in, "test"); err != nil {
		t.Fatalf("fixReader: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a: hello") || !strings.Contains(out, "b: world") {
		t.Errorf("docs lost: %q", out)
	}
	if !strings.Contains(out, "\n---\n") {
		t.Errorf("missing document separator: %q", out)
	}
}

func TestFixReaderKeepsNonStringValues(t *testing.T) {
	cfg := &FixConfig{MainConfig: &MainConfig{J: true}}
	in := strings.NewReader(`{"count": 42, "ok": true, "name": "x"}`)
	var buf bytes.Buffer
	if err := fixReader(cfg, norm.ToInternal, &buf, in, "test"); err != nil {
		t.Fatalf("fixReader: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "null") {
		t.Errorf("values replaced by null: %q", out)
	}
	for _, want := range []string{"42", "true", "\"x\""} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output: %q", want, out)
		}
	}
}
