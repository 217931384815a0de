package httpx

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims when you need more than the subject
)
