package auth

import "errors"

// Kind identifies the failure class independently of the user-facing
// message, so callers can map it to a transport status.
type Kind string

const (
	KindDuplicateEmail      Kind = "duplicate_email"
	KindInvalidCredentials  Kind = "invalid_credentials"
	KindAccountNotActivated Kind = "account_not_activated"
	KindInvalidToken        Kind = "invalid_token"
	KindTokenExpired        Kind = "token_expired"
	KindValidation          Kind = "validation"
	KindRateLimited         Kind = "rate_limited"
	KindStoreUnavailable    Kind = "store_unavailable"
)

// Error pairs a kind with a user-facing Arabic message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrDuplicateEmail      = &Error{KindDuplicateEmail, "البريد الإلكتروني مستخدم بالفعل"}
	ErrInvalidCredentials  = &Error{KindInvalidCredentials, "البريد الإلكتروني أو كلمة المرور غير صحيحة"}
	ErrAccountNotActivated = &Error{KindAccountNotActivated, "هذا الحساب لم يتم تفعيله بعد"}
	ErrInvalidToken        = &Error{KindInvalidToken, "رمز التحقق غير صحيح"}
	ErrTokenExpired        = &Error{KindTokenExpired, "انتهت صلاحية رمز التحقق"}
	ErrTooManyAttempts     = &Error{KindRateLimited, "محاولات تسجيل دخول كثيرة، يرجى المحاولة لاحقاً"}
	ErrStoreUnavailable    = &Error{KindStoreUnavailable, "حدث خطأ غير متوقع، يرجى المحاولة لاحقاً"}

	ErrInvalidEmail     = &Error{KindValidation, "البريد الإلكتروني غير صحيح"}
	ErrPasswordTooShort = &Error{KindValidation, "كلمة المرور يجب أن تكون 8 أحرف على الأقل"}
	ErrNameTooShort     = &Error{KindValidation, "الاسم يجب أن يكون حرفين على الأقل"}
)

// ErrNotFound is returned by Store implementations when a record does
// not exist. It never reaches API callers directly.
var ErrNotFound = errors.New("record not found")
