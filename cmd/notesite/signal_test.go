package main

// Notes:
// - notifyContext: OS signal delivery is not exercised; it is asynchronous
//   and platform specific. Covered: initial state, stop() and parent
//   cancellation.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cancelBy   string // "", "stop", "parent"
		wantCancel bool
	}{
		{name: "live until canceled", cancelBy: "", wantCancel: false},
		{name: "stop cancels", cancelBy: "stop", wantCancel: true},
		{name: "parent cancellation propagates", cancelBy: "parent", wantCancel: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parent, cancel := context.WithCancel(context.Background())
			defer cancel()

			ctx, stop := notifyContext(parent)
			defer stop()

			switch tt.cancelBy {
			case "stop":
				stop()
			case "parent":
				cancel()
			}

			select {
			case <-ctx.Done():
				if !tt.wantCancel {
					t.Fatal("context canceled unexpectedly")
				}
			default:
				if tt.wantCancel {
					t.Fatal("context not canceled")
				}
			}
		})
	}
}
