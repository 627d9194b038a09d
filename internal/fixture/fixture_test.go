package fixture

import (
	"bytes"
	"testing"
)

func TestSplit(t *testing.T) {
	data := []byte("abcdefgh")

	tests := []struct {
		name  string
		sizes []int
		want  []string
	}{
		{"cycle", []int{3, 1}, []string{"abc", "d", "efg", "h"}},
		{"one size", []int{5}, []string{"abcde", "fgh"}},
		{"empty chunks", []int{0, 4}, []string{"", "abcd", "", "efgh"}},
		{"negative as empty", []int{-2, 6}, []string{"", "abcdef", "", "gh"}},
		{"no sizes", nil, []string{"abcdefgh"}},
		{"all zero", []int{0, 0}, []string{"abcdefgh"}},
		{"all negative", []int{-1}, []string{"abcdefgh"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(data, tt.sizes...)
			if len(got) != len(tt.want) {
				t.Fatalf("Split() returned %d chunks %q, want %q", len(got), got, tt.want)
			}
			for i, chunk := range got {
				if string(chunk) != tt.want[i] {
					t.Errorf("chunk %d = %q, want %q", i, chunk, tt.want[i])
				}
			}
			if joined := bytes.Join(got, nil); !bytes.Equal(joined, data) {
				t.Errorf("chunks join to %q, want %q", joined, data)
			}
		})
	}

	if got := Split(nil, 0); got != nil {
		t.Errorf("Split(nil) = %q, want nil", got)
	}
}
