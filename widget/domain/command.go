package domain

// CommandRecord is one transcript entry. Path is the working directory at
// the moment the command was submitted, before any navigation it caused.
type CommandRecord struct {
	Input  string
	Output string
	Path   string
}

func NewCommandRecord(input, output, path string) CommandRecord {
	return CommandRecord{
		Input:  input,
		Output: output,
		Path:   path,
	}
}

func (c CommandRecord) HasOutput() bool {
	return c.Output != ""
}
