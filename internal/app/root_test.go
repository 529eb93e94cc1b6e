package app

import (
	"testing"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"init":      false,
		"analyze":   false,
		"remote":    false,
		"engines":   false,
		"ratelimit": false,
		"validate":  false,
		"history":   false,
	}
	for _, cmd := range rootCmd.Commands() {
		name := cmd.Name()
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("%s subcommand not registered on rootCmd", name)
		}
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("rootCmd.Version = %q", rootCmd.Version)
	}
	if appVersion != "1.2.3" {
		t.Errorf("appVersion = %q", appVersion)
	}
}
