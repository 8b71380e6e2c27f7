package repair

import (
	"testing"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", []byte{}, ""},
		{"ascii", []byte("hello, world"), "hello, world"},
		{"valid utf8", []byte("äÄ 日本"), "äÄ 日本"},
		{"pure latin1", []byte{0xE4, 0xC4}, "äÄ"},
		{"mixed utf8 and latin1", append([]byte("aä"), 0xC4, 'b'), "aäÄb"},
		{"latin1 before valid multibyte", append([]byte{0xFC}, []byte("ü")...), "üü"},
		{"truncated multibyte at end", []byte{'x', 0xC3}, "xÃ"},
		{"lone continuation byte", []byte{'x', 0x80, 'y'}, "x\u0080y"},
		{"invalid continuation", []byte{0xC3, 0x28}, "Ã("},
		{"three byte run intact", []byte("€"), "€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Repair(tt.in)
			if got != tt.want {
				t.Errorf("Repair(% x) = %q, want %q", tt.in, got, tt.want)
			}
			// second pass over the result is a no-op
			if again := RepairString(got); again != got {
				t.Errorf("repair not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestRepairStringValidNoCopy(t *testing.T) {
	s := "already fine äÄ"
	if got := RepairString(s); got != s {
		t.Errorf("RepairString changed valid input: %q", got)
	}
}
