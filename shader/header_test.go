package shader

import (
	"bytes"
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
)

func mustIdentity(t *testing.T, name string) Identity {
	t.Helper()
	id, err := DeriveIdentity(name)
	if err != nil {
		t.Fatalf("DeriveIdentity(%q) = %v", name, err)
	}
	return id
}

func seq(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestRender_TwelveBytes(t *testing.T) {
	// 12 bytes fill exactly one row; there must be no short row after it.
	got := Render(seq(12), mustIdentity(t, "test"), "test.spv")

	want := `// Auto-generated from test.spv
// DO NOT EDIT!

#ifndef SHADER_TEST_H
#define SHADER_TEST_H

#include <cstdint>
#include <cstddef>

namespace Shaders {

constexpr size_t test_size = 12;

constexpr uint8_t test_data[] = {
    0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b,
};

} // namespace Shaders

#endif // SHADER_TEST_H
`
	if string(got) != want {
		t.Errorf("Render() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_ThirteenBytes(t *testing.T) {
	// One byte past a full row spills onto a short second row.
	got := string(Render(seq(13), mustIdentity(t, "test"), "test.spv"))

	if !strings.Contains(got, "constexpr size_t test_size = 13;") {
		t.Errorf("missing size constant, got:\n%s", got)
	}
	wantRows := "    0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b,\n    0x0c,\n"
	if !strings.Contains(got, wantRows) {
		t.Errorf("array rows mismatch, got:\n%s", got)
	}
}

func TestRender_Empty(t *testing.T) {
	got := string(Render(nil, mustIdentity(t, "empty"), "empty.spv"))

	if !strings.Contains(got, "constexpr size_t empty_size = 0;") {
		t.Errorf("missing zero size constant, got:\n%s", got)
	}
	// The array body must be completely empty: opening brace line followed
	// directly by the closing brace.
	if !strings.Contains(got, "constexpr uint8_t empty_data[] = {\n};") {
		t.Errorf("array body not empty, got:\n%s", got)
	}
}

var hexLiteral = regexp.MustCompile(`0x([0-9a-f]{2})`)

// decodeArray reconstructs the embedded bytes from the hex literals in
// rendered header text, in row order.
func decodeArray(t *testing.T, rendered string) []byte {
	t.Helper()
	var out []byte
	for _, m := range hexLiteral.FindAllStringSubmatch(rendered, -1) {
		b, err := hex.DecodeString(m[1])
		if err != nil {
			t.Fatalf("bad hex literal %q: %v", m[0], err)
		}
		out = append(out, b[0])
	}
	return out
}

func TestRender_Fidelity(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "single byte", data: []byte{0xff}},
		{name: "one short of a row", data: seq(11)},
		{name: "exact row", data: seq(12)},
		{name: "one past a row", data: seq(13)},
		{name: "several rows", data: seq(100)},
		{name: "all byte values", data: seq(256)},
		{name: "spirv magic", data: []byte{0x03, 0x02, 0x23, 0x07, 0x00, 0x00, 0x01, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := Render(tt.data, mustIdentity(t, "blob"), "blob.bin")
			got := decodeArray(t, string(rendered))
			if !bytes.Equal(got, tt.data) {
				t.Errorf("decoded %d bytes, want %d; round trip lost data", len(got), len(tt.data))
			}
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	data := seq(200)
	id := mustIdentity(t, "repeat")
	a := Render(data, id, "repeat.spv")
	b := Render(data, id, "repeat.spv")
	if !bytes.Equal(a, b) {
		t.Error("two renders of identical input differ")
	}
}

func TestRender_RowWidth(t *testing.T) {
	for _, n := range []int{0, 1, 11, 12, 13, 24, 25, 255} {
		rendered := string(Render(seq(n), mustIdentity(t, "blob"), "blob.bin"))

		// Extract the array body between the opening and closing braces.
		open := strings.Index(rendered, "_data[] = {\n")
		closing := strings.Index(rendered, "};")
		body := rendered[open+len("_data[] = {\n") : closing]

		var rows []string
		if body != "" {
			rows = strings.Split(strings.TrimSuffix(body, "\n"), "\n")
		}

		wantRows := (n + bytesPerRow - 1) / bytesPerRow
		if len(rows) != wantRows {
			t.Errorf("n=%d: %d rows, want %d", n, len(rows), wantRows)
			continue
		}
		for i, row := range rows {
			if !strings.HasSuffix(row, ",") {
				t.Errorf("n=%d: row %d lacks trailing comma: %q", n, i, row)
			}
			count := strings.Count(row, "0x")
			want := bytesPerRow
			if i == len(rows)-1 && n%bytesPerRow != 0 {
				want = n % bytesPerRow
			}
			if count != want {
				t.Errorf("n=%d: row %d has %d literals, want %d", n, i, count, want)
			}
		}
	}
}

func BenchmarkRender(b *testing.B) {
	data := seq(64 * 1024)
	id, _ := DeriveIdentity("bench")
	b.ReportAllocs()
	for b.Loop() {
		Render(data, id, "bench.spv")
	}
}
