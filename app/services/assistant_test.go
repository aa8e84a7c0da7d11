package services

import (
	"context"
	"errors"
	"testing"
)

func TestExtractAction(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantReply  string
		wantTarget string
	}{
		{
			"no directive",
			"Pendaftaran dibuka bulan Juni.",
			"Pendaftaran dibuka bulan Juni.",
			"",
		},
		{
			"trailing directive",
			"Membuka halaman siswa. [navigate:/students]",
			"Membuka halaman siswa.",
			"/students",
		},
		{
			"directive only",
			"[navigate:/dashboard]",
			"",
			"/dashboard",
		},
		{
			"directive mid-sentence",
			"Silakan [navigate:/settings] lihat pengaturan.",
			"Silakan  lihat pengaturan.",
			"/settings",
		},
		{
			"malformed directive ignored",
			"Lihat [navigate:settings] di sana.",
			"Lihat [navigate:settings] di sana.",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, action := extractAction(tt.reply)
			if reply != tt.wantReply {
				t.Errorf("extractAction() reply = %q, want %q", reply, tt.wantReply)
			}
			if tt.wantTarget == "" {
				if action != nil {
					t.Errorf("extractAction() action = %+v, want nil", action)
				}
				return
			}
			if action == nil {
				t.Fatal("extractAction() action = nil, want navigate action")
			}
			if action.Type != "navigate" || action.Target != tt.wantTarget {
				t.Errorf("extractAction() action = %+v, want navigate to %s", action, tt.wantTarget)
			}
		})
	}
}

func TestChatWithoutAPIKey(t *testing.T) {
	a := NewAssistant("")

	_, err := a.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "halo"}})
	if !errors.Is(err, ErrAssistantNotConfigured) {
		t.Errorf("Chat() error = %v, want ErrAssistantNotConfigured", err)
	}
}
