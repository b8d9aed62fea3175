// forge-bridge exposes the codeforge terminal over a websocket. Each
// connection spawns its own agent process and relays lines between the
// socket and the process's stdio, so a browser or editor can drive the same
// REPL a terminal user would.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"os/exec"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// outputFrame is one line of agent output sent to the client.
type outputFrame struct {
	Type string `json:"type"` // "stdout" or "stderr"
	Data string `json:"data"`
}

func main() {
	addr := flag.String("addr", ":8080", "Address to listen on")
	agentBin := flag.String("agent", "codeforge", "Path to the codeforge binary")
	flag.Parse()

	http.HandleFunc("/ws", handleWS(*agentBin, flag.Args()))

	log.Printf("forge-bridge listening on ws://%s/ws", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func handleWS(agentBin string, agentArgs []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Upgrade error:", err)
			return
		}
		defer conn.Close()

		cmd := exec.Command(agentBin, agentArgs...)

		stdin, err := cmd.StdinPipe()
		if err != nil {
			log.Println("Error getting stdin:", err)
			return
		}
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			log.Println("Error getting stdout:", err)
			return
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			log.Println("Error getting stderr:", err)
			return
		}

		if err := cmd.Start(); err != nil {
			log.Println("Error starting agent:", err)
			return
		}
		defer cmd.Wait()
		defer stdin.Close()

		// Agent stdout/stderr → websocket
		go relayOutput(conn, stdout, "stdout")
		go relayOutput(conn, stderr, "stderr")

		// Websocket → agent stdin
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Println("WS read error:", err)
				return
			}
			if _, err := stdin.Write(append(msg, '\n')); err != nil {
				log.Println("Stdin write error:", err)
				return
			}
		}
	}
}

func relayOutput(conn *websocket.Conn, r io.Reader, kind string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		frame, err := json.Marshal(outputFrame{Type: kind, Data: scanner.Text()})
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Println("WS write error:", err)
			return
		}
	}
}
