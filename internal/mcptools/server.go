// Package mcptools exposes the toolkit helpers and the user registry as MCP
// tools, over stdio or streamable HTTP.
package mcptools

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// shutdownTimeout bounds how long RunHTTP waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

type toolSpec struct {
	name        string
	description string
	register    func(server *mcp.Server, tool *mcp.Tool)
}

func tool[In, Out any](name, description string, h mcp.ToolHandlerFor[In, Out]) toolSpec {
	return toolSpec{
		name:        name,
		description: description,
		register: func(server *mcp.Server, t *mcp.Tool) {
			mcp.AddTool(server, t, h)
		},
	}
}

func (s *ToolkitService) tools() []toolSpec {
	return []toolSpec{
		tool("add", "Add two numbers.", s.Add),
		tool("subtract", "Subtract b from a.", s.Subtract),
		tool("multiply", "Multiply two numbers.", s.Multiply),
		tool("divide", "Divide a by b. Fails when b is zero.", s.Divide),
		tool("circle_area", "Area of a circle using PI = 3.14159.", s.CircleArea),
		tool("capitalize", "Upper-case the first character and lower-case the rest.", s.Capitalize),
		tool("reverse", "Reverse the characters of a string.", s.Reverse),
		tool("is_palindrome", "Check whether the letters and digits of a string read the same backwards.", s.IsPalindrome),
		tool("count_words", "Count whitespace-separated words.", s.CountWords),
		tool("truncate", "Cut a string to maxLength characters and append an ellipsis.", s.Truncate),
		tool("format_date", "Format a date as YYYY-MM-DD, DD/MM/YYYY or MM-DD-YYYY.", s.FormatDate),
		tool("days_difference", "Whole days between two dates, rounded up.", s.DaysDifference),
		tool("is_leap_year", "Check whether a year is a Gregorian leap year.", s.IsLeapYear),
		tool("get_config", "Return the default application settings.", s.GetConfig),
		tool("update_config", "Return the default settings with the given fields replaced. Defaults are not modified.", s.UpdateConfig),
		tool("add_user", "Append a user to the registry. Duplicate ids are allowed.", s.AddUser),
		tool("get_user", "Find the first user with the given id.", s.GetUser),
		tool("list_active_users", "List active users in insertion order.", s.ListActiveUsers),
		tool("count_users", "Number of users in the registry.", s.CountUsers),
		tool("remove_user", "Remove the first user with the given id.", s.RemoveUser),
	}
}

// NewToolkitMCPServer creates an MCP server with every toolkit tool registered.
func NewToolkitMCPServer(svc *ToolkitService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "utilkit",
		Version: version,
	}, nil)

	for _, t := range svc.tools() {
		t.register(server, &mcp.Tool{Name: t.name, Description: t.description})
	}
	return server
}

// RunStdio runs the MCP server on stdio transport, blocking until stdin is
// closed or the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts an HTTP server exposing the MCP tools on addr and shuts it
// down when ctx is cancelled. Shutdown failures are written to logger; a nil
// logger discards them.
func RunHTTP(ctx context.Context, server *mcp.Server, addr string, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("WARNING: MCP HTTP server shutdown on %s: %v", addr, err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
