package shader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbed(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cube.spv")
	output := filepath.Join(dir, "cube_shader.h")

	data := seq(37)
	if err := os.WriteFile(input, data, 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := Embed(input, output, "cube")
	if err != nil {
		t.Fatalf("Embed() = %v", err)
	}
	if n != len(data) {
		t.Errorf("Embed() = %d bytes, want %d", n, len(data))
	}

	hdr, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading generated header: %v", err)
	}
	if !strings.Contains(string(hdr), "// Auto-generated from cube.spv") {
		t.Errorf("header comment does not name the source file:\n%s", hdr)
	}
	if !strings.Contains(string(hdr), "constexpr size_t cube_size = 37;") {
		t.Errorf("missing size constant:\n%s", hdr)
	}
	if got := decodeArray(t, string(hdr)); !bytes.Equal(got, data) {
		t.Error("embedded bytes do not round-trip")
	}
}

func TestEmbed_MissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.h")

	// Pre-existing destination content must survive a failed invocation.
	if err := os.WriteFile(output, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Embed(filepath.Join(dir, "missing.spv"), output, "missing")
	if err == nil {
		t.Fatal("Embed() with missing input succeeded, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Embed() = %v, want wrapped os.ErrNotExist", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous" {
		t.Errorf("destination modified by failed invocation: %q", got)
	}
}

func TestEmbed_InvalidName(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.spv")
	output := filepath.Join(dir, "out.h")
	if err := os.WriteFile(input, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Embed(input, output, "not-a-name")
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Fatalf("Embed() = %v, want ErrInvalidIdentifier", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("destination created despite invalid name")
	}
}

func TestEmbedBytes(t *testing.T) {
	output := filepath.Join(t.TempDir(), "tri.h")
	data := []byte{0x03, 0x02, 0x23, 0x07}

	if err := EmbedBytes(data, output, "tri", "tri.wgsl"); err != nil {
		t.Fatalf("EmbedBytes() = %v", err)
	}
	hdr, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(hdr), "// Auto-generated from tri.wgsl") {
		t.Errorf("source comment = wrong origin:\n%s", hdr)
	}
	if got := decodeArray(t, string(hdr)); !bytes.Equal(got, data) {
		t.Error("embedded bytes do not round-trip")
	}
}
