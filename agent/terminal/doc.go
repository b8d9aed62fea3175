// Package terminal implements the interactive command-line mode of the
// codeforge agent.
//
// The terminal reads user input line by line. Input starting with "!" is a
// local command handled without a model round trip; anything else is sent to
// the model as a coding task, and the response's FILE:/DIR:/CMD: markers are
// applied to the active project while the model's explanation is printed as
// prose.
//
// # Local commands
//
//	!project <name>  select or create the active project
//	!list            list files in the project
//	!cat <file>      print a file
//	!exec <command>  run a shell command in the project directory
//	!help            usage text
//
// The words "exit", "quit" and "bye" end the session, as does closing stdin.
//
// # Modes
//
// The terminal respects the agent's operation mode:
//
//   - Auto mode: parsed commands run without confirmation
//   - Prompt mode: the user is asked before each CMD: marker is executed
package terminal
