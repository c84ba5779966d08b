package model

// TokenManager issues and validates bearer tokens carrying a platform
// user id.
type TokenManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ParseAccessToken(tokenString string) (int64, error)
}
