package services

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
)

const (
	defaultCallerName = "Mom"
	fakeCallDuration  = 45
)

// FakeCall scripts an incoming call addressed to the user's first name.
func FakeCall(callerName, userName string, now time.Time) dto.FakeCallResponse {
	if strings.TrimSpace(callerName) == "" {
		callerName = defaultCallerName
	}
	first := "there"
	if fields := strings.Fields(userName); len(fields) > 0 {
		first = fields[0]
	}
	return dto.FakeCallResponse{
		Caller:    callerName,
		Message:   "Hey " + first + ", just checking when you'll be home?",
		Duration:  fakeCallDuration,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
