package contextkeys

type contextKey string

const (
	UserIDKey    contextKey = "userID"
	CompanyIDKey contextKey = "companyID"
	EmailKey     contextKey = "email"
)
