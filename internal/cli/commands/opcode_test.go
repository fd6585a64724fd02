package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tritstack/tritsys/internal/cli/config"
)

func TestOpcodeCommand(t *testing.T) {
	config.ResetConfig()

	cmd := NewOpcodeCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"5"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "120") {
		t.Errorf("output should contain the encoding 120, got: %s", output)
	}
	if !strings.Contains(output, "Checksum valid") {
		t.Errorf("output should report a valid checksum, got: %s", output)
	}
}

func TestOpcodeCommandInvalidNumber(t *testing.T) {
	config.ResetConfig()

	cmd := NewOpcodeCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"twelve"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should return an error for a non-numeric argument")
	}
}

func TestOpcodeExecCommand(t *testing.T) {
	config.ResetConfig()

	tests := []struct {
		name string
		args []string
		want string
	}{
		// 0x01 is add; its encoding is 11.
		{name: "add", args: []string{"exec", "11", "5", "7"}, want: "110"},
		// 0x03 is multiply; 10 in ternary plus checksum 1.
		{name: "multiply", args: []string{"exec", "101", "5", "7"}, want: "1022"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewOpcodeCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpcodeExecCommandBadChecksum(t *testing.T) {
	config.ResetConfig()

	cmd := NewOpcodeCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"exec", "12", "1", "2"})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should reject a tampered encoding")
	}
}
