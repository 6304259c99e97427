// Evbridge is an interactive line client for an Evennia MUD server,
// exercising the bridge end to end: socket transfer, portal framing and
// command triples, and transcript recording.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"github.com/castlelorestudios/EvenniaPluginSampleProject/bridge"
	"github.com/castlelorestudios/EvenniaPluginSampleProject/config"
	"github.com/castlelorestudios/EvenniaPluginSampleProject/portal"
	"github.com/castlelorestudios/EvenniaPluginSampleProject/transcript"

	_ "github.com/tliron/commonlog/simple"
)

var (
	serverText = color.New(color.FgCyan)
	mediaText  = color.New(color.FgYellow)
	echoText   = color.New(color.Faint)
)

func main() {
	configDir := flag.String("config", ".", "Directory containing evennia.toml")
	addr := flag.String("addr", "", "Server address (overrides config)")
	port := flag.Int("port", 0, "Server port (overrides config)")
	guid := flag.String("guid", "", "Session guid (overrides config)")
	verbosity := flag.Int("v", 0, "Log verbosity")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: evbridge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Connects to an Evennia portal and relays stdin lines as game commands.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evbridge: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *guid != "" {
		cfg.Client.GUID = *guid
	}
	if cfg.Client.GUID == "" {
		cfg.Client.GUID = fmt.Sprintf("evbridge-%d", time.Now().UnixNano())
	}

	commonlog.Configure(*verbosity, nil)

	var store *transcript.Store
	if cfg.Client.TranscriptPath != "" {
		store, err = transcript.Open(cfg.Client.TranscriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "evbridge: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	conn, ok := bridge.Connect(cfg.Server.Address, cfg.Server.Port)
	if !ok {
		fmt.Fprintf(os.Stderr, "evbridge: could not connect to %s:%d\n",
			cfg.Server.Address, cfg.Server.Port)
		os.Exit(1)
	}
	defer bridge.CloseConnection(conn)
	conn.SetReceiveCap(cfg.Client.RecvCap)

	fmt.Printf("Connected to %s:%d (session %s). Type commands; 'quit' exits.\n",
		cfg.Server.Address, cfg.Server.Port, cfg.Client.GUID)

	ctx := context.Background()

	// The connection is single-owner; the reader goroutine and the stdin
	// loop below share it under one lock.
	var mu sync.Mutex
	done := make(chan struct{})
	go func() {
		var lines portal.LineBuffer
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			mu.Lock()
			pending := bridge.HasPendingData(conn)
			var chunk string
			if pending {
				chunk, pending = bridge.GetMessage(conn)
			}
			mu.Unlock()
			if !pending {
				continue
			}
			for _, line := range lines.Feed(chunk) {
				display(line)
				_ = store.Append(ctx, transcript.Entry{
					Session:   cfg.Client.GUID,
					Direction: transcript.DirectionReceive,
					Line:      line.Text,
				})
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	first := true
	for scanner.Scan() {
		input := scanner.Text()
		if input == "quit" {
			break
		}
		payload, ok := portal.EncodeTextCommand(input)
		if !ok {
			continue
		}
		if first {
			payload = portal.WithSessionHeader(cfg.Client.GUID, payload)
			first = false
		}
		mu.Lock()
		sent := bridge.SendMessage(conn, payload)
		mu.Unlock()
		if !sent {
			fmt.Fprintln(os.Stderr, "evbridge: send failed, connection lost")
			break
		}
		echoText.Printf("> %s\n", input)
		_ = store.Append(ctx, transcript.Entry{
			Session:   cfg.Client.GUID,
			Direction: transcript.DirectionSend,
			Line:      payload,
		})
	}
	close(done)
}

// display renders one decoded portal line for the terminal.
func display(line portal.Line) {
	cmd, ok := portal.DecodeCommand(line.Text)
	if !ok {
		serverText.Println(line.Text)
		return
	}
	if text, ok := cmd.TextOf(); ok {
		serverText.Println(text)
		return
	}
	if url, imageMap, ok := cmd.ImageOf(); ok {
		if imageMap != "" {
			mediaText.Printf("[image] %s (map %s)\n", url, imageMap)
		} else {
			mediaText.Printf("[image] %s\n", url)
		}
		return
	}
	if url, ok := cmd.SoundOf(); ok {
		mediaText.Printf("[sound] %s\n", url)
		return
	}
	serverText.Printf("[%s] %s\n", cmd.Name, line.Text)
}
