package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAuthenticationFailed indicates that the supplied credentials were wrong.
// The message is deliberately uniform so callers cannot tell whether the
// account exists or the password was incorrect.
var ErrAuthenticationFailed = errors.New("invalid identifier or password")

// ErrUnauthorized indicates a missing or unusable session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenInvalid indicates a token that failed signature verification or no
// longer matches the stored refresh token slot.
var ErrTokenInvalid = errors.New("token is invalid")

// ErrTokenExpired indicates a token past its expiry.
var ErrTokenExpired = errors.New("token has expired")

// ErrAssetUpload indicates a failure in the external asset storage.
var ErrAssetUpload = errors.New("asset upload failed")

// ErrInternal indicates an unexpected store or configuration failure. Handlers
// log the underlying cause and surface only this.
var ErrInternal = errors.New("internal error")
