package chat

import (
	"time"

	"github.com/hotgigs/careerassist/internal/model/profile"
)

// Session captures one transient assistant conversation. Transcripts live
// only as long as the session; nothing is persisted across restarts.
type Session struct {
	ID        string          `json:"id"`
	Profile   profile.Profile `json:"profile"`
	CreatedAt time.Time       `json:"createdAt"`
}
