package middleware

// Context keys used by the middleware chain.

const (
	// ContextKeyUserID holds the Clerk user id of the authenticated admin.
	ContextKeyUserID = "userID"
)
