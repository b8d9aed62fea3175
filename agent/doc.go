// Package agent provides the core loop of the codeforge assistant.
//
// This package contains the code shared between the interaction surfaces
// (the terminal REPL and the websocket bridge). It owns the conversation
// with the model and the application of the model's response to the active
// project.
//
// # Architecture
//
//   - Core agent (this package): configuration, conversation history, the
//     active project and the query flow
//   - Terminal subpackage (agent/terminal): the interactive CLI
//   - marker package: parsing and applying the FILE:/DIR:/CMD: response
//     protocol
//
// # Query flow
//
// One call to Agent.Query performs a full turn:
//
//  1. Summarize the active project (file listing plus the content of a
//     bounded set of key files) into a context block.
//  2. Send the system prompt, prior turns, and the new request to the
//     configured LLM client.
//  3. Record the exchange in the in-memory history.
//  4. Parse the response into prose and marker segments, then apply them to
//     the project: files are written, directories created, commands run.
//
// Progress is reported through marker.Callbacks so each interaction surface
// can render it its own way.
//
// # Modes
//
//   - ModeAuto: every parsed action is applied without confirmation
//   - ModePrompt: shell commands require confirmation (via the
//     ShouldRunCommand callback)
//
// # Projects
//
// All filesystem and command effects are confined to the active project, a
// named directory under the configured workspace root. Selecting a project
// with SetProject resets the conversation; Query returns ErrNoProject until
// a project has been selected.
package agent
