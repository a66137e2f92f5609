package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./simconsole-mcp -base-url http://localhost:8000")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	// Create MCP client
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "simconsole-client",
		Version: "1.0.0",
	}, nil)

	// Connect to the server
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to simconsole MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools          - List available tools")
	fmt.Println("  /list [group]   - List simulations (handled, unhandled, script, data)")
	fmt.Println("  /run <id>       - Trigger a simulation by action id")
	fmt.Println("  /call <METHOD> <path> - Trigger a raw endpoint")
	fmt.Println("  /log [limit]    - Show the activity log")
	fmt.Println("  /clear          - Clear the activity log")
	fmt.Println("  /health         - Probe the backend")
	fmt.Println("  /exit           - Exit the client")
	fmt.Println()

	// Interactive REPL
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		parts := strings.Fields(input)

		switch parts[0] {
		case "/exit":
			fmt.Println("Goodbye!")
			return

		case "/tools":
			listTools(ctx, session)

		case "/list":
			args := map[string]interface{}{}
			if len(parts) > 1 {
				args["group"] = parts[1]
			}
			callTool(ctx, session, "list_simulations", args)

		case "/run":
			if len(parts) < 2 {
				fmt.Println("Usage: /run <action id>")
				continue
			}
			callTool(ctx, session, "trigger_simulation", map[string]interface{}{
				"action_id": parts[1],
			})

		case "/call":
			if len(parts) < 3 {
				fmt.Println("Usage: /call <METHOD> <path>")
				continue
			}
			callTool(ctx, session, "trigger_simulation", map[string]interface{}{
				"method":   parts[1],
				"endpoint": parts[2],
			})

		case "/log":
			args := map[string]interface{}{}
			if len(parts) > 1 {
				if n, err := strconv.Atoi(parts[1]); err == nil {
					args["limit"] = n
				}
			}
			callTool(ctx, session, "get_activity_log", args)

		case "/clear":
			callTool(ctx, session, "clear_activity_log", map[string]interface{}{})

		case "/health":
			callTool(ctx, session, "check_health", map[string]interface{}{})

		default:
			fmt.Printf("Unknown command %q, try /tools\n", parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]interface{}) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("❌ Error: ")
	} else {
		fmt.Printf("✅ Result: ")
	}

	// Try to pretty-print the content
	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(v.Text)
		default:
			// Try JSON marshaling for other types
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}
