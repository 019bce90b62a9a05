package deps

import (
	"time"

	"github.com/upandey0/bookmarks/internal/auth"
	"github.com/upandey0/bookmarks/internal/logger"
	"github.com/upandey0/bookmarks/internal/service"
)

// Deps carries everything handlers need, threaded through route
// registration instead of package-level state.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	ClientURL string // CORS origin of the web client

	Bookmarks *service.Bookmarks
	Users     *service.Users
	Tokens    *auth.TokenService
}
