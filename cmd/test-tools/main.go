package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	action := flag.String("action", "btn-todos-list", "action id to trigger during the smoke test")
	server := flag.String("server", "", "path to the simconsole-mcp binary (searched for when empty)")
	baseURL := flag.String("base-url", "", "simulation backend root handed to the server")
	configPath := flag.String("config", "", "YAML config file handed to the server")
	flag.Parse()

	fmt.Println("🧪 Testing simconsole MCP Server and Tool Calling")
	fmt.Println("=================================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	serverPath := *server
	if serverPath == "" {
		serverPath = findServerBinary()
	}
	if serverPath == "" {
		log.Fatal("❌ MCP server binary not found. Run: go build -o simconsole-mcp ./cmd/simconsole-mcp")
	}
	fmt.Println("✅ Test 1: MCP server binary found")

	// Start the MCP server
	cmd := exec.Command(serverPath, serverArgs(*baseURL, *configPath)...)
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	// Create client
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	// Connect to server
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("✅ Test 2: Connected to MCP server")

	// List available tools
	fmt.Println("\n✓ Test 3: Listing available tools")
	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("❌ Failed to list tools: %v", err)
	}
	fmt.Printf("  Found %d tools:\n", len(listResult.Tools))
	for _, tool := range listResult.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	steps := []struct {
		title string
		tool  string
		args  map[string]interface{}
	}{
		{"check_health", "check_health", map[string]interface{}{}},
		{"list_simulations", "list_simulations", map[string]interface{}{"group": "data"}},
		{"trigger_simulation (" + *action + ")", "trigger_simulation", map[string]interface{}{"action_id": *action}},
		{"get_activity_log", "get_activity_log", map[string]interface{}{"limit": 10}},
	}

	failed := 0
	for i, step := range steps {
		fmt.Printf("\n✓ Test %d: Testing %s tool\n", i+4, step.title)
		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      step.tool,
			Arguments: step.args,
		})
		if err != nil {
			fmt.Printf("  ❌ %s failed: %v\n", step.tool, err)
			failed++
			continue
		}
		if result.IsError {
			fmt.Printf("  ❌ %s returned an error result\n", step.tool)
			failed++
		} else {
			fmt.Printf("  ✅ %s called successfully\n", step.tool)
		}
		printPreview(result)
	}

	fmt.Println("\n=================================================")
	if failed > 0 {
		fmt.Printf("❌ %d tool call(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("✅ All MCP tool calling tests complete!")
	fmt.Println("\n💡 To test interactively, run: go run ./cmd/mcp-client ./simconsole-mcp")
}

func printPreview(result *mcp.CallToolResult) {
	for i, content := range result.Content {
		if i >= 3 {
			fmt.Printf("  ... and %d more content items\n", len(result.Content)-i)
			break
		}
		switch v := content.(type) {
		case *mcp.TextContent:
			preview := v.Text
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fmt.Printf("    %s\n", preview)
		default:
			fmt.Printf("    [%T]\n", content)
		}
	}
}

func findServerBinary() string {
	candidates := []string{
		"./simconsole-mcp",
		"../../simconsole-mcp",
		"../../../simconsole-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}

// serverArgs forwards the backend settings to the server as flags.
func serverArgs(baseURL, configPath string) []string {
	var args []string
	if configPath != "" {
		args = append(args, "-config", configPath)
	}
	if baseURL != "" {
		args = append(args, "-base-url", baseURL)
	}
	return args
}
