package context

import "github.com/labstack/echo/v4"

// KeyUserID is the echo.Context key holding the authenticated user id.
const KeyUserID = "userID"

// SetUserID stores the authenticated user id.
func SetUserID(c echo.Context, userID string) {
	c.Set(KeyUserID, userID)
}

// GetUserID returns the authenticated user id set by the auth middleware.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(KeyUserID).(string)

	return userID, ok && userID != ""
}
