// Package mcpserver exposes the tools over the Model Context Protocol using
// the stateless streamable HTTP transport.
package mcpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/i474232898/weather-mock-mcp/internal/tools"
)

type citiesArgs struct {
	Country string `json:"country" jsonschema:"Country name (e.g., usa, canada, uk, australia, india, portugal, thailand)"`
}

type weatherArgs struct {
	City string `json:"city" jsonschema:"City name (supports both English and Thai for Thai cities)"`
}

// New builds an MCP server with get_cities and get_weather registered.
func New(t *tools.Tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    tools.ServerID,
		Title:   tools.ServerName,
		Version: tools.ServerVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        tools.GetCitiesName,
		Description: tools.GetCitiesDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, a citiesArgs) (*mcp.CallToolResult, any, error) {
		return textResult(t.GetCities(a.Country)), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        tools.GetWeatherName,
		Description: tools.GetWeatherDescription,
	}, func(ctx context.Context, req *mcp.CallToolRequest, a weatherArgs) (*mcp.CallToolResult, any, error) {
		return textResult(t.GetWeather(a.City)), nil, nil
	})

	server.AddReceivingMiddleware(logging)

	return server
}

// NewHandler returns the streamable HTTP handler for server. Sessions are
// not tracked and responses are plain JSON rather than SSE streams.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless:    true,
		JSONResponse: true,
	})
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func logging(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		start := time.Now()
		res, err := next(ctx, method, req)
		if err != nil {
			log.Warnf("mcp %s failed after %s: %v", method, time.Since(start), err)
			return res, err
		}
		log.Debugf("mcp %s completed in %s", method, time.Since(start))
		return res, nil
	}
}
