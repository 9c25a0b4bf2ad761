package compdb

// Entry is one object of a compile_commands.json array.
// Either Arguments or Command carries the compiler invocation; Arguments wins when both are set.
// A relative Directory is taken relative to the folder holding the database.
type Entry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Output    string   `json:"output,omitempty"`
}
