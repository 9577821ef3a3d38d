package session

// RecoverableError marks a failure that is reported to the user with a
// short message before the process exits non-zero. Everything else that
// escapes the loop is unrecoverable and gets logged in full instead.
type RecoverableError struct {
	Message string
	Err     error
}

func (e *RecoverableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RecoverableError) Unwrap() error {
	return e.Err
}
