// Package script runs line-oriented turtle programs.
//
// Each line holds one command followed by its arguments, split with shell
// quoting rules; a # starts a comment:
//
//	# a red square
//	pencolor red
//	pensize 3
//	fd 100
//	lt 90
//	write "Hello, turtle" true center Arial 12
//
// Commands are the turtle's commands in lower case (forward, left,
// circle, pencolor, ...) together with the conventional aliases (fd, lt,
// pu, seth, ...). Names are matched case-insensitively. Colors are a
// single word (red, "#ff8800", rgb(10,20,30)) or three numbers; hex
// colors need quotes because an unquoted # starts a comment.
// Query commands such as position or heading print their result to the
// runner's output.
package script
