package tools

// Descriptor is the informational document served at the root path.
type Descriptor struct {
	Server          string       `json:"server"`
	Description     string       `json:"description"`
	Transport       string       `json:"transport"`
	MCPEndpoint     string       `json:"mcp_endpoint"`
	ProtocolVersion string       `json:"protocol_version"`
	Capabilities    Capabilities `json:"capabilities"`
}

// Capabilities lists the tools with a one-line summary each.
type Capabilities struct {
	Tools map[string]string `json:"tools"`
}

const (
	ServerName      = "MCP Mock Weather Server"
	ServerID        = "weather"
	ServerVersion   = "1.0.0"
	Transport       = "HTTP Streamable"
	ProtocolVersion = "2025-03-26"
)

// NewDescriptor builds the root descriptor for an MCP endpoint path.
func NewDescriptor(mcpEndpoint string) Descriptor {
	return Descriptor{
		Server:          ServerName,
		Description:     "This is a Model Context Protocol (MCP) server using HTTP Streamable transport.",
		Transport:       Transport,
		MCPEndpoint:     mcpEndpoint,
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools: map[string]string{
				GetCitiesName:  "Get list of cities for a given country (usa, canada, uk, australia, india, portugal, thailand)",
				GetWeatherName: "Get mock weather information for a given city (supports English and Thai city names)",
			},
		},
	}
}
