package dom

// Must panics if err is non-nil. It is for values built from constants,
// where an error is a programming mistake.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
