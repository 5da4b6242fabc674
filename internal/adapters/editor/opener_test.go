package editor

import (
	"reflect"
	"testing"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		editorEnv string
		wantArgs  []string
	}{
		{
			name:      "preferred wins",
			preferred: "code -w",
			editorEnv: "vim",
			wantArgs:  []string{"code", "-w", "/tmp/home.yaml"},
		},
		{
			name:      "falls back to EDITOR",
			editorEnv: "nano",
			wantArgs:  []string{"nano", "/tmp/home.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editorEnv)
			t.Setenv("VISUAL", "")

			cmd, err := NewOpener(tt.preferred).Command("/tmp/home.yaml")
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if !reflect.DeepEqual(cmd.Args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", cmd.Args, tt.wantArgs)
			}
		})
	}
}
