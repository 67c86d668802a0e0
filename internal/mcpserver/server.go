// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the portfolio documents for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nsodat/vitrina/internal/content"
)

// Server wraps the MCP server with portfolio tools.
type Server struct {
	mcp    *server.MCPServer
	store  *content.Store
	holder *content.Holder
	images string
}

// New creates a new MCP server with all portfolio tools registered.
// imagesDir is where uploaded preview images land; empty disables the
// upload tool.
func New(store *content.Store, holder *content.Holder, imagesDir string) *Server {
	s := &Server{store: store, holder: holder, images: imagesDir}

	s.mcp = server.NewMCPServer(
		"Vitrina",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_sections",
		mcp.WithDescription("List the four portfolio sections with their files and current state."),
	), s.listSections)

	s.mcp.AddTool(mcp.NewTool("read_section",
		mcp.WithDescription("Read one portfolio document as JSON."),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section key: modules, thesis, courseworks or practicals")),
	), s.readSection)

	s.mcp.AddTool(mcp.NewTool("update_section",
		mcp.WithDescription("Replace one portfolio document. content MUST be the whole document "+
			"as JSON in the canonical shape for the section. Read the contract first via the "+
			"get_section_contract tool or the vitrina://section-format resource."),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section key: modules, thesis, courseworks or practicals")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Whole document as JSON")),
	), s.updateSection)

	s.mcp.AddTool(mcp.NewTool("portfolio_stats",
		mcp.WithDescription("Counts of modules, semesters, labs, courseworks and practicals."),
	), s.portfolioStats)

	s.mcp.AddTool(mcp.NewTool("get_section_contract",
		mcp.WithDescription("Returns the canonical document shapes for all four sections. "+
			"Call this before updating a section to ensure correct structure."),
	), s.getSectionContract)

	s.mcp.AddTool(mcp.NewTool("upload_preview",
		mcp.WithDescription("Store an image in the site's images directory. Returns the path "+
			"to put into a document's previewImage or link field."),
		mcp.WithString("url", mcp.Required(), mcp.Description("HTTP(S) URL or base64 data URI of the image")),
		mcp.WithString("filename", mcp.Description("Optional target filename (extension required)")),
	), s.uploadPreview)

	// Resource: section format contract.
	s.mcp.AddResource(
		mcp.NewResource("vitrina://section-format", "Section Format Contract",
			mcp.WithResourceDescription("Canonical JSON document shapes for the portfolio sections."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSectionFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listSections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.holder.Current()

	type info struct {
		Section   string `json:"section"`
		File      string `json:"file"`
		Singleton bool   `json:"singleton"`
		Empty     bool   `json:"empty"`
	}
	infos := make([]info, 0, 4)
	for _, sec := range content.Sections() {
		infos = append(infos, info{
			Section:   string(sec),
			File:      sec.File(),
			Singleton: sec.Singleton(),
			Empty:     snap.Empty(sec),
		})
	}
	out, _ := json.MarshalIndent(infos, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sec, ok := content.ParseSection(key)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section: %s", key)), nil
	}
	data, err := s.store.Read(sec)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", sec.File())), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) updateSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sec, ok := content.ParseSection(key)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section: %s", key)), nil
	}
	doc, err := content.DecodeDocument(sec, []byte(body))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid document: %v", err)), nil
	}

	if err := s.store.WriteDoc(sec, doc); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.holder.Reload(sec)

	return mcp.NewToolResultText(fmt.Sprintf("updated: %s", sec)), nil
}

func (s *Server) portfolioStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.holder.Current().Stats(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getSectionContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(SectionFormatContract), nil
}

func (s *Server) readSectionFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "vitrina://section-format",
			MIMEType: "text/markdown",
			Text:     SectionFormatContract,
		},
	}, nil
}
