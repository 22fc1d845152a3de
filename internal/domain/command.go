package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates a command with explicit program and arguments.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// PsqlTarget identifies a containerized PostgreSQL instance reached via docker exec.
type PsqlTarget struct {
	Docker    string // docker binary, usually "docker"
	Container string
	User      string
	Database  string
}

// NewPsqlCommand builds the docker exec invocation that runs sql through psql.
// border=2 frames every row in '|' so field 1 is the first column.
func NewPsqlCommand(t PsqlTarget, sql string) *ExecCommand {
	docker := t.Docker
	if docker == "" {
		docker = "docker"
	}
	return NewCommand(docker, []string{
		"exec", "-i", t.Container,
		"psql",
		"-U", t.User,
		"-d", t.Database,
		"-P", "border=2",
		"-c", sql,
	}, "")
}
