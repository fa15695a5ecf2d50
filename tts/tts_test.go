package tts

import (
	"context"
	"reflect"
	"testing"
)

func TestNewCommandEngineUsesEnvOverride(t *testing.T) {
	t.Setenv("TTS_COMMAND", "/opt/bin/speak")
	e, err := NewCommandEngine("en-US-GuyNeural")
	if err != nil {
		t.Fatalf("NewCommandEngine: %v", err)
	}
	if e.command != "/opt/bin/speak" {
		t.Errorf("command: got %q", e.command)
	}
}

func TestBuildCmd(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
	}{
		{
			name:    "edge-tts",
			command: "edge-tts",
			want:    []string{"edge-tts", "--voice", "en-US-GuyNeural", "--text", "hello", "--write-media", "out.mp3"},
		},
		{
			name:    "python script",
			command: "speak.py",
			want:    []string{"python3", "speak.py", "--text", "hello", "--output", "out.mp3"},
		},
		{
			name:    "generic binary",
			command: "/opt/bin/speak",
			want:    []string{"/opt/bin/speak", "--text", "hello", "--output", "out.mp3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &CommandEngine{command: tt.command, voice: "en-US-GuyNeural"}
			cmd := e.buildCmd(context.Background(), "hello", "out.mp3")
			if !reflect.DeepEqual(cmd.Args, tt.want) {
				t.Errorf("args: got %v, want %v", cmd.Args, tt.want)
			}
		})
	}
}
