package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRAM(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{"exact 16GB", 16 << 30, "16GB"},
		{"rounds up", 16<<30 - 200<<20, "16GB"},
		{"rounds down", 16<<30 + 200<<20, "16GB"},
		{"zero", 0, "0GB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRAM(tt.bytes))
		})
	}
}

func TestParseWmicValue(t *testing.T) {
	out := "\r\n\r\nName=NVIDIA GeForce RTX 4080\r\n\r\n"
	assert.Equal(t, "NVIDIA GeForce RTX 4080", ParseWmicValue(out, "Name"))
}

func TestParseWmicValue_MissingKey(t *testing.T) {
	assert.Equal(t, "", ParseWmicValue("Caption=whatever", "Name"))
}

func TestParseWmicValue_FirstAssignmentWins(t *testing.T) {
	out := "Name=Primary GPU\nName=Secondary GPU\n"
	assert.Equal(t, "Primary GPU", ParseWmicValue(out, "Name"))
}

func TestModuleSpeed(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{"single module", "\r\n\r\nSpeed=3200\r\n\r\n", "3200MHz"},
		{"first module wins", "Speed=3600\nSpeed=3200\n", "3600MHz"},
		{"unreported speed", "Speed=0\r\n", ""},
		{"no modules", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModuleSpeed(tt.out))
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "NVIDIA GeForce RTX 4080", FirstLine("\n  NVIDIA GeForce RTX 4080  \nsecond\n"))
	assert.Equal(t, "", FirstLine("  \n \n"))
}
