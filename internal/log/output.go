package log

// Output is the console sink handed to components that report progress.
// Info lines are highlighted; Write lines are plain.
type Output interface {
	Info(message string)
	Write(message string)
}

// Console writes through the package-level logger, so it honours the
// configured level and quiet mode.
type Console struct{}

// Info prints a highlighted (green) line.
func (Console) Info(message string) { Success(message) }

// Write prints a plain line.
func (Console) Write(message string) { Info(message) }

// Discard drops everything.
type Discard struct{}

func (Discard) Info(string)  {}
func (Discard) Write(string) {}
