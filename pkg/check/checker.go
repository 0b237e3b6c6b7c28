package check

// Checker is implemented by all single-result check types.
// Each check validates one aspect of the viewing environment
// and returns a Result indicating success or failure.
type Checker interface {
	Run() Result
}
