package logsvc

import (
	"io"
	"log"
	"testing"

	"github.com/medhistory/medhistory/core"
)

func TestNewLoggerSelection(t *testing.T) {
	std := log.New(io.Discard, "", 0)

	tests := []struct {
		name        string
		debug       bool
		token       string
		wantRollbar bool
	}{
		{name: "debug build stays on std", debug: true, token: "tok"},
		{name: "no token stays on std", debug: false, token: ""},
		{name: "deployed build with token goes to rollbar", debug: false, token: "tok", wantRollbar: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &core.Config{Env: "TEST", Debug: tt.debug, RollbarToken: tt.token}
			logger := NewLogger(std, conf)
			if _, ok := logger.(*RollbarLogger); ok != tt.wantRollbar {
				t.Errorf("NewLogger() = %T, wantRollbar %t", logger, tt.wantRollbar)
			}
		})
	}
}
